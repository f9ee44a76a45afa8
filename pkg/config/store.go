package config

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Store holds the validated node registry and the resolved filesystem
// location. It is assembled once by Load and read-only afterwards: no
// method mutates it and Nodes returns a copy, so concurrent readers need
// no locking.
type Store struct {
	location    string
	locationURL string
	nodes       []Node
}

// Location returns the resolved base directory. A trailing separator is
// guaranteed.
func (s *Store) Location() string {
	return s.location
}

// LocationURL returns the base directory as a file-scheme URL.
func (s *Store) LocationURL() string {
	return s.locationURL
}

// Nodes returns the node registry in document order. The slice is a copy;
// callers cannot mutate the store through it.
func (s *Store) Nodes() []Node {
	out := make([]Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Node returns the first node with the given name. Name uniqueness is not
// enforced at load time, so first match wins.
func (s *Store) Node(name string) (Node, bool) {
	for _, n := range s.nodes {
		if n.Name == name {
			return n, true
		}
	}
	return Node{}, false
}

// Len returns the number of nodes in the registry.
func (s *Store) Len() int {
	return len(s.nodes)
}

// FormatText returns a text representation of the loaded configuration.
func (s *Store) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Location:     %s\n", s.location))
	sb.WriteString(fmt.Sprintf("Location URL: %s\n", s.locationURL))
	sb.WriteString(fmt.Sprintf("Nodes:        %d\n\n", len(s.nodes)))

	for _, n := range s.nodes {
		sb.WriteString(n.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the loaded configuration.
func (s *Store) FormatJSON() (string, error) {
	type nodeJSON struct {
		Name      string            `json:"name"`
		Port      int               `json:"port"`
		CertPort  int               `json:"cert-port"`
		MaxClient int               `json:"max-client"`
		Encrypt   string            `json:"encrypt"`
		AuthType  string            `json:"auth-type"`
		Arguments map[string]string `json:"arguments"`
	}

	nodes := make([]nodeJSON, 0, len(s.nodes))
	for _, n := range s.nodes {
		nodes = append(nodes, nodeJSON{
			Name:      n.Name,
			Port:      n.Port,
			CertPort:  n.CertPort,
			MaxClient: n.MaxClient,
			Encrypt:   n.EncryptType.String(),
			AuthType:  n.AuthType.String(),
			Arguments: n.Arguments(),
		})
	}

	result := map[string]interface{}{
		"location":     s.location,
		"location_url": s.locationURL,
		"nodes":        nodes,
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

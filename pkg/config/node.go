package config

import (
	"fmt"
	"strings"
)

//go:generate go run github.com/dmarkham/enumer -type AuthType -trimprefix AuthType -transform upper -output authtype.gen.go
//go:generate go run github.com/dmarkham/enumer -type EncryptType -trimprefix EncryptType -output encrypttype.gen.go

// AuthType selects the authentication scheme a node uses.
type AuthType int

const (
	// AuthTypeSimple authenticates clients against a shared password.
	AuthTypeSimple AuthType = iota
	// AuthTypeUser authenticates clients against a user group.
	AuthTypeUser
)

// EncryptType selects the transport encryption scheme a node uses. Only
// OpenSSL needs the secondary certificate-exchange port.
type EncryptType int

const (
	EncryptTypeNone EncryptType = iota
	EncryptTypeOpenSSL
	EncryptTypeJKS
)

// Argument keys populated by the node factory, one per auth type.
const (
	ArgPassword = "password"
	ArgGroup    = "group"
)

// ParseAuthType matches s against the AuthType constants, ignoring case.
// "Simple", "SIMPLE" and "simple" all yield AuthTypeSimple.
func ParseAuthType(s string) (AuthType, error) {
	t, err := AuthTypeString(strings.ToUpper(s))
	if err != nil {
		return 0, fmt.Errorf("unknown auth type %q", s)
	}
	return t, nil
}

// ParseEncryptType matches s against the EncryptType constants. Matching
// is exact and case-sensitive: "OpenSSL" is valid, "openssl" is not.
func ParseEncryptType(s string) (EncryptType, error) {
	for _, t := range EncryptTypeValues() {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown encrypt type %q", s)
}

// Credentials is the auth-scheme-specific payload attached to a node.
// It is a closed set: one implementation per AuthType constant, so a new
// auth type cannot reach the node factory without a matching payload.
type Credentials interface {
	authType() AuthType
	argument() (key, value string)
}

// SimpleCredentials is the payload for AuthTypeSimple.
type SimpleCredentials struct {
	Password string
}

func (c SimpleCredentials) authType() AuthType         { return AuthTypeSimple }
func (c SimpleCredentials) argument() (string, string) { return ArgPassword, c.Password }

// UserCredentials is the payload for AuthTypeUser.
type UserCredentials struct {
	Group string
}

func (c UserCredentials) authType() AuthType         { return AuthTypeUser }
func (c UserCredentials) argument() (string, string) { return ArgGroup, c.Group }

// Node is one independently configured server endpoint. A Node is fully
// assembled by NewNode and never mutated afterwards; the argument map
// always holds exactly the one key implied by the auth type.
type Node struct {
	Name        string
	Port        int
	CertPort    int
	MaxClient   int
	AuthType    AuthType
	EncryptType EncryptType

	args map[string]string
}

// NewNode assembles a node from validated values and its credential
// payload. The auth type is taken from the credentials so the two can
// never disagree.
func NewNode(name string, port, certPort, maxClient int, encrypt EncryptType, creds Credentials) Node {
	key, value := creds.argument()
	return Node{
		Name:        name,
		Port:        port,
		CertPort:    certPort,
		MaxClient:   maxClient,
		AuthType:    creds.authType(),
		EncryptType: encrypt,
		args:        map[string]string{key: value},
	}
}

// Argument returns the auth-scheme-specific argument stored under key, or
// the empty string when the key does not belong to the active auth type.
func (n Node) Argument(key string) string {
	return n.args[key]
}

// Arguments returns a copy of the argument map.
func (n Node) Arguments() map[string]string {
	out := make(map[string]string, len(n.args))
	for k, v := range n.args {
		out[k] = v
	}
	return out
}

func (n Node) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[name:%s port:%d cert-port:%d maxClient:%d Auth:%s",
		n.Name, n.Port, n.CertPort, n.MaxClient, n.AuthType)

	switch n.AuthType {
	case AuthTypeSimple:
		fmt.Fprintf(&sb, " password:%s", n.args[ArgPassword])
	case AuthTypeUser:
		fmt.Fprintf(&sb, " group:%s", n.args[ArgGroup])
	}

	fmt.Fprintf(&sb, " Encrypt:%s]", n.EncryptType)
	return sb.String()
}

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// nodeRecord is the intermediate, loosely-typed form of one entry in the
// node document. Validation happens after parsing, never here.
type nodeRecord struct {
	Name      string `json:"name"`
	Port      int    `json:"port"`
	CertPort  int    `json:"cert-port"`
	MaxClient int    `json:"max-client"`
	Encrypt   string `json:"encrypt"`
	AuthType  string `json:"auth-type"`
	Password  string `json:"password,omitempty"`
	Group     string `json:"group,omitempty"`
}

// Loader resolves, bootstraps and loads the node document.
type Loader struct {
	goos    string
	baseDir string
	logger  hclog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithBaseDir overrides the platform location table with an explicit base
// directory.
func WithBaseDir(dir string) Option {
	return func(l *Loader) {
		l.baseDir = dir
	}
}

// WithGOOS overrides the platform used for directory lookup and file-URL
// rendering. Defaults to runtime.GOOS.
func WithGOOS(goos string) Option {
	return func(l *Loader) {
		l.goos = goos
	}
}

// WithLogger sets the logger used by the load pipeline.
func WithLogger(logger hclog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// Load runs the whole resolution pipeline once: resolve the base
// directory, create it if missing, bootstrap the template document on
// first run, then parse, validate and assemble every node in document
// order. It returns an immutable Store, or no Store at all - a single bad
// record aborts the whole load.
//
// Port-range violations surface as *FatalError; every other failure is
// wrapped into *InitError with its cause preserved.
func Load(opts ...Option) (*Store, error) {
	l := &Loader{
		goos:   runtime.GOOS,
		logger: hclog.Default().Named("config"),
	}
	for _, opt := range opts {
		opt(l)
	}

	store, err := l.load()
	if err != nil {
		if IsFatal(err) {
			return nil, err
		}
		return nil, &InitError{Err: err}
	}
	return store, nil
}

func (l *Loader) load() (*Store, error) {
	dir := l.baseDir
	if dir == "" {
		var err error
		dir, err = DefaultLocation(l.goos)
		if err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create config directory %s: %w", dir, err)
	}

	location := dir
	if !strings.HasSuffix(location, "/") {
		location += "/"
	}

	path := location + ConfigFileName
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		l.logger.Info("no configuration file found, writing template", "path", path)
		if err := WriteTemplate(path); err != nil {
			return nil, fmt.Errorf("write template %s: %w", path, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	records, err := parseDocument(data)
	if err != nil {
		return nil, err
	}

	nodes := make([]Node, 0, len(records))
	for _, rec := range records {
		auth, encrypt, err := l.validate(rec)
		if err != nil {
			return nil, err
		}

		node := NewNode(rec.Name, rec.Port, rec.CertPort, rec.MaxClient, encrypt, credentialsFor(auth, rec))
		l.logger.Info("create node", "node", node.String())
		nodes = append(nodes, node)
	}

	return &Store{
		location:    location,
		locationURL: fileURL(location, l.goos),
		nodes:       nodes,
	}, nil
}

// parseDocument deserializes the raw document into ordered records. Only
// structural well-formedness is checked here.
func parseDocument(data []byte) ([]nodeRecord, error) {
	var records []nodeRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse node document: %w", err)
	}
	return records, nil
}

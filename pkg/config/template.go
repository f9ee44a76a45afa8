package config

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
)

// ConfigFileName is the node document file name inside the base directory.
const ConfigFileName = "config.json"

// Template values written on first run when no config file exists.
const (
	TemplateNodeName  = "default"
	TemplatePort      = 2020
	TemplateCertPort  = 7060
	TemplateMaxClient = 10
)

// WriteTemplate writes a syntactically valid single-node document to path.
// The password is generated fresh on every invocation so first-run
// deployments never ship a shared default secret.
func WriteTemplate(path string) error {
	password, err := generatePassword()
	if err != nil {
		return err
	}

	doc := []nodeRecord{{
		Name:      TemplateNodeName,
		Port:      TemplatePort,
		CertPort:  TemplateCertPort,
		MaxClient: TemplateMaxClient,
		Encrypt:   EncryptTypeOpenSSL.String(),
		AuthType:  "simple",
		Password:  password,
	}}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("render template document: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// generatePassword returns 8 lowercase hex characters from a CSPRNG.
func generatePassword() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate template password: %w", err)
	}
	return hex.EncodeToString(b), nil
}

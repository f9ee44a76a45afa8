package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadDir writes document into dir as config.json and runs Load against it.
func loadDir(t *testing.T, dir, document string) (*Store, error) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(document), 0600))
	return Load(WithBaseDir(dir), WithLogger(hclog.NewNullLogger()))
}

func TestLoadSingleNode(t *testing.T) {
	document := `[{"name":"n1","port":2020,"cert-port":7060,"max-client":10,"encrypt":"OpenSSL","auth-type":"simple","password":"abc123"}]`

	store, err := loadDir(t, t.TempDir(), document)
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())

	n := store.Nodes()[0]
	assert.Equal(t, "n1", n.Name)
	assert.Equal(t, 2020, n.Port)
	assert.Equal(t, 7060, n.CertPort)
	assert.Equal(t, 10, n.MaxClient)
	assert.Equal(t, AuthTypeSimple, n.AuthType)
	assert.Equal(t, EncryptTypeOpenSSL, n.EncryptType)
	assert.Equal(t, "abc123", n.Argument(ArgPassword))
}

func TestLoadPreservesDocumentOrder(t *testing.T) {
	document := `[
		{"name":"alpha","port":1001,"cert-port":7001,"max-client":5,"encrypt":"OpenSSL","auth-type":"simple","password":"a"},
		{"name":"beta","port":1002,"max-client":5,"encrypt":"None","auth-type":"user","group":"ops"},
		{"name":"gamma","port":1003,"max-client":5,"encrypt":"JKS","auth-type":"simple","password":"c"}
	]`

	store, err := loadDir(t, t.TempDir(), document)
	require.NoError(t, err)

	nodes := store.Nodes()
	require.Len(t, nodes, 3)
	assert.Equal(t, "alpha", nodes[0].Name)
	assert.Equal(t, "beta", nodes[1].Name)
	assert.Equal(t, "gamma", nodes[2].Name)
}

func TestLoadPortValidation(t *testing.T) {
	tests := []struct {
		name string
		port int
		ok   bool
	}{
		{name: "zero", port: 0},
		{name: "negative", port: -1},
		{name: "upper bound", port: 65536},
		{name: "far out of range", port: 100000},
		{name: "lowest valid", port: 1, ok: true},
		{name: "highest valid", port: 65535, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			document := fmt.Sprintf(
				`[{"name":"n1","port":%d,"cert-port":7060,"max-client":10,"encrypt":"OpenSSL","auth-type":"simple","password":"x"}]`,
				tt.port)

			store, err := loadDir(t, t.TempDir(), document)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.port, store.Nodes()[0].Port)
				return
			}

			require.Error(t, err)
			assert.True(t, IsFatal(err))
			assert.Nil(t, store)
		})
	}
}

func TestLoadCertPortValidation(t *testing.T) {
	tests := []struct {
		name     string
		certPort int
		encrypt  string
		ok       bool
	}{
		{name: "out of range with OpenSSL", certPort: 70000, encrypt: "OpenSSL"},
		{name: "zero with OpenSSL", certPort: 0, encrypt: "OpenSSL"},
		{name: "out of range with None is accepted", certPort: 70000, encrypt: "None", ok: true},
		{name: "out of range with JKS is accepted", certPort: -5, encrypt: "JKS", ok: true},
		{name: "valid with OpenSSL", certPort: 7060, encrypt: "OpenSSL", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			document := fmt.Sprintf(
				`[{"name":"n1","port":2020,"cert-port":%d,"max-client":10,"encrypt":"%s","auth-type":"simple","password":"x"}]`,
				tt.certPort, tt.encrypt)

			store, err := loadDir(t, t.TempDir(), document)
			if tt.ok {
				require.NoError(t, err)
				// The value is parsed but not range-validated.
				assert.Equal(t, tt.certPort, store.Nodes()[0].CertPort)
				return
			}

			require.Error(t, err)
			assert.True(t, IsFatal(err))
			assert.Nil(t, store)
		})
	}
}

func TestLoadRejectsUnknownEnumValues(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{
			name:     "unknown encrypt value",
			document: `[{"name":"n1","port":2020,"cert-port":7060,"max-client":10,"encrypt":"RSA","auth-type":"simple","password":"x"}]`,
		},
		{
			name:     "encrypt matching is case-sensitive",
			document: `[{"name":"n1","port":2020,"cert-port":7060,"max-client":10,"encrypt":"openssl","auth-type":"simple","password":"x"}]`,
		},
		{
			name:     "unknown auth-type value",
			document: `[{"name":"n1","port":2020,"cert-port":7060,"max-client":10,"encrypt":"None","auth-type":"token"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := loadDir(t, t.TempDir(), tt.document)
			require.Error(t, err)
			assert.Nil(t, store)

			var initErr *InitError
			assert.ErrorAs(t, err, &initErr)
			assert.False(t, IsFatal(err))
		})
	}
}

func TestLoadNoPartialRegistryOnFailure(t *testing.T) {
	// The second record is broken; the first must not leak out.
	document := `[
		{"name":"good","port":2020,"cert-port":7060,"max-client":10,"encrypt":"OpenSSL","auth-type":"simple","password":"x"},
		{"name":"bad","port":70000,"max-client":10,"encrypt":"None","auth-type":"simple","password":"y"}
	]`

	store, err := loadDir(t, t.TempDir(), document)
	require.Error(t, err)
	assert.Nil(t, store)
}

func TestLoadAuthTypeIsCaseInsensitive(t *testing.T) {
	for _, variant := range []string{"simple", "SIMPLE", "Simple"} {
		t.Run(variant, func(t *testing.T) {
			document := fmt.Sprintf(
				`[{"name":"n1","port":2020,"max-client":10,"encrypt":"None","auth-type":"%s","password":"x"}]`,
				variant)

			store, err := loadDir(t, t.TempDir(), document)
			require.NoError(t, err)
			assert.Equal(t, AuthTypeSimple, store.Nodes()[0].AuthType)
		})
	}
}

func TestLoadUserAuth(t *testing.T) {
	document := `[{"name":"n1","port":2020,"max-client":10,"encrypt":"None","auth-type":"user","group":"ops"}]`

	store, err := loadDir(t, t.TempDir(), document)
	require.NoError(t, err)

	n := store.Nodes()[0]
	assert.Equal(t, AuthTypeUser, n.AuthType)
	assert.Equal(t, "ops", n.Argument(ArgGroup))
}

func TestLoadPermissiveFields(t *testing.T) {
	t.Run("max-client without lower bound", func(t *testing.T) {
		document := `[{"name":"n1","port":2020,"max-client":0,"encrypt":"None","auth-type":"simple","password":"x"}]`

		store, err := loadDir(t, t.TempDir(), document)
		require.NoError(t, err)
		assert.Equal(t, 0, store.Nodes()[0].MaxClient)
	})

	t.Run("missing password loads as empty argument", func(t *testing.T) {
		document := `[{"name":"n1","port":2020,"max-client":10,"encrypt":"None","auth-type":"simple"}]`

		store, err := loadDir(t, t.TempDir(), document)
		require.NoError(t, err)
		assert.Equal(t, "", store.Nodes()[0].Argument(ArgPassword))
	})

	t.Run("duplicate names are not rejected", func(t *testing.T) {
		document := `[
			{"name":"n1","port":2020,"max-client":10,"encrypt":"None","auth-type":"simple","password":"a"},
			{"name":"n1","port":2021,"max-client":10,"encrypt":"None","auth-type":"simple","password":"b"}
		]`

		store, err := loadDir(t, t.TempDir(), document)
		require.NoError(t, err)
		assert.Equal(t, 2, store.Len())
	})
}

func TestLoadMalformedDocument(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{name: "not json", document: `this is not json`},
		{name: "object instead of array", document: `{"name":"n1"}`},
		{name: "truncated", document: `[{"name":"n1"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := loadDir(t, t.TempDir(), tt.document)
			require.Error(t, err)
			assert.Nil(t, store)

			var initErr *InitError
			assert.ErrorAs(t, err, &initErr)
		})
	}
}

func TestLoadBootstrapsTemplate(t *testing.T) {
	dir := t.TempDir()

	store, err := Load(WithBaseDir(dir), WithLogger(hclog.NewNullLogger()))
	require.NoError(t, err)

	// The template file now exists on disk.
	_, statErr := os.Stat(filepath.Join(dir, ConfigFileName))
	require.NoError(t, statErr)

	// Round-trip: the loaded node matches the template literals.
	require.Equal(t, 1, store.Len())
	n := store.Nodes()[0]
	assert.Equal(t, TemplateNodeName, n.Name)
	assert.Equal(t, TemplatePort, n.Port)
	assert.Equal(t, TemplateCertPort, n.CertPort)
	assert.Equal(t, TemplateMaxClient, n.MaxClient)
	assert.Equal(t, AuthTypeSimple, n.AuthType)
	assert.Equal(t, EncryptTypeOpenSSL, n.EncryptType)
	assert.Regexp(t, hexPassword, n.Argument(ArgPassword))
}

func TestLoadCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	store, err := Load(WithBaseDir(dir), WithLogger(hclog.NewNullLogger()))
	require.NoError(t, err)
	assert.Equal(t, dir+"/", store.Location())
}

func TestLoadLocationAndURL(t *testing.T) {
	dir := t.TempDir()

	store, err := Load(WithBaseDir(dir), WithLogger(hclog.NewNullLogger()))
	require.NoError(t, err)

	assert.Equal(t, dir+"/", store.Location())
	assert.Equal(t, "file://"+dir+"/", store.LocationURL())
}

func TestLoadWindowsStyleURL(t *testing.T) {
	dir := t.TempDir()

	store, err := Load(WithBaseDir(dir), WithGOOS("windows"), WithLogger(hclog.NewNullLogger()))
	require.NoError(t, err)

	assert.Equal(t, "file:///"+dir+"/", store.LocationURL())
}

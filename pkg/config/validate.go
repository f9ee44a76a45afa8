package config

import "fmt"

// isPort is the valid-TCP-port-range predicate shared by the port and
// cert-port checks.
func isPort(p int) bool {
	return p > 0 && p < 65536
}

// validate enforces the per-field and cross-field constraints for one
// record and resolves its enum selectors. The cert-port range only
// matters when the node encrypts with OpenSSL; other schemes carry the
// value through unchecked.
func (l *Loader) validate(rec nodeRecord) (AuthType, EncryptType, error) {
	if !isPort(rec.Port) {
		l.logger.Error("illegal port, must be greater than 0 and smaller than 65536",
			"node", rec.Name, "port", rec.Port)
		return 0, 0, &FatalError{Node: rec.Name, Field: "port", Value: rec.Port}
	}

	encrypt, err := ParseEncryptType(rec.Encrypt)
	if err != nil {
		return 0, 0, fmt.Errorf("node %q: %w", rec.Name, err)
	}

	auth, err := ParseAuthType(rec.AuthType)
	if err != nil {
		return 0, 0, fmt.Errorf("node %q: %w", rec.Name, err)
	}

	if encrypt == EncryptTypeOpenSSL && !isPort(rec.CertPort) {
		l.logger.Error("illegal cert-port, must be greater than 0 and smaller than 65536",
			"node", rec.Name, "cert-port", rec.CertPort)
		return 0, 0, &FatalError{Node: rec.Name, Field: "cert-port", Value: rec.CertPort}
	}

	return auth, encrypt, nil
}

// credentialsFor builds the credential payload implied by the auth type.
// The switch must stay exhaustive over the AuthType constants; a new auth
// type that reaches the default arm is a programming error, not a config
// error.
func credentialsFor(auth AuthType, rec nodeRecord) Credentials {
	switch auth {
	case AuthTypeSimple:
		return SimpleCredentials{Password: rec.Password}
	case AuthTypeUser:
		return UserCredentials{Group: rec.Group}
	default:
		panic(fmt.Sprintf("config: no credentials mapping for auth type %s", auth))
	}
}

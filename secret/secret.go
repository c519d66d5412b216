// Package secret resolves secret references used in configuration.
//
// A reference is either a literal value or one of
//
//	env:NAME                                  environment variable
//	file:/path/to/file                        file content, surrounding whitespace trimmed
//	vault:secret/data/bridge#private_key      HashiCorp Vault, field of a KV secret
//	gsm:projects/p/secrets/s/versions/latest  Google Secret Manager version
package secret

import (
	"context"
	"fmt"
	"os"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	vaultapi "github.com/hashicorp/vault/api"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultVaultField = "value"

// GSMCredentialsEnv names a service account file for Secret Manager,
// application default credentials are used when unset
const GSMCredentialsEnv = "BRIDGE_GSM_CREDENTIALS"

func Resolve(ctx context.Context, ref string) (string, error) {
	scheme, value, ok := strings.Cut(ref, ":")
	if !ok {
		return ref, nil
	}

	switch scheme {
	case "env":
		v, ok := os.LookupEnv(value)
		if !ok || v == "" {
			return "", fmt.Errorf("environment variable %s is not set", value)
		}
		return v, nil
	case "file":
		bz, err := os.ReadFile(value)
		if err != nil {
			return "", errors.Wrapf(err, "failed to read secret file %s", value)
		}
		return strings.TrimSpace(string(bz)), nil
	case "vault":
		return resolveVault(ctx, value)
	case "gsm":
		return resolveSecretManager(ctx, value)
	}

	// not a reference, e.g. a url
	return ref, nil
}

func resolveVault(ctx context.Context, ref string) (string, error) {
	path, field, ok := strings.Cut(ref, "#")
	if !ok || field == "" {
		field = defaultVaultField
	}

	// VAULT_ADDR and VAULT_TOKEN are read from the environment
	client, err := vaultapi.NewClient(vaultapi.DefaultConfig())
	if err != nil {
		return "", errors.Wrap(err, "failed to create vault client")
	}

	sec, err := client.Logical().ReadWithContext(ctx, path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read vault secret %s", path)
	}
	if sec == nil || sec.Data == nil {
		return "", fmt.Errorf("vault secret %s not found", path)
	}

	data := sec.Data
	// kv v2 nests the payload
	if nested, ok := data["data"].(map[string]interface{}); ok {
		data = nested
	}

	v, ok := data[field].(string)
	if !ok {
		return "", fmt.Errorf("vault secret %s has no string field %s", path, field)
	}
	return v, nil
}

func resolveSecretManager(ctx context.Context, name string) (string, error) {
	opts := []option.ClientOption{}
	if path := os.Getenv(GSMCredentialsEnv); path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}
	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return "", errors.Wrap(err, "failed to create secret manager client")
	}
	defer client.Close()

	resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", fmt.Errorf("secret %s not found", name)
		}
		return "", errors.Wrapf(err, "failed to access secret %s", name)
	}

	return strings.TrimSpace(string(resp.GetPayload().GetData())), nil
}

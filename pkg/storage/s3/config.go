package s3

// Config holds S3 configuration
type Config struct {
	Endpoint        string `json:"endpoint,omitempty"` // Optional: for LocalStack/MinIO
	Region          string `json:"region"`             // AWS region
	Bucket          string `json:"bucket"`             // S3 bucket name
	AccessKeyID     string `json:"-"`                  // Optional explicit credentials
	SecretAccessKey string `json:"-"`
	ForcePathStyle  bool   `json:"force_path_style"` // For LocalStack/MinIO
}

// HasStaticCredentials reports whether both halves of an explicit key pair are set.
// A lone access key or secret is ignored and the default provider chain is used.
func (c Config) HasStaticCredentials() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}

// CredentialSource names where credentials will come from, for logging
func (c Config) CredentialSource() string {
	if c.HasStaticCredentials() {
		return "static"
	}
	return "default_chain"
}

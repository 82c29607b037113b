package config

// DemoConfig defines the targets of the demonstration sequence run when
// no URL is given on the command line
type DemoConfig struct {
	URL      string                 `json:"url,omitempty" yaml:"url,omitempty" validate:"required,absurl"`
	PostURL  string                 `json:"post_url,omitempty" yaml:"post_url,omitempty" validate:"required,absurl"`
	PostBody map[string]interface{} `json:"post_body,omitempty" yaml:"post_body,omitempty"`
}

// NewDefaultDemoConfig creates default demo configuration
func NewDefaultDemoConfig() DemoConfig {
	return DemoConfig{
		URL:     DefaultDemoURL,
		PostURL: DefaultDemoPostURL,
		PostBody: map[string]interface{}{
			"postId": 1,
			"id":     101,
			"name":   "John Doe",
			"email":  "john.doe@example.com",
			"body":   "This is a test comment",
		},
	}
}

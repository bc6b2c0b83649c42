package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout.
//
// Besides the structured sections it accepts the flat keys of the legacy
// pyloadConfig.json file (pyloadUrl, pyloadUser, pyloadPW). Structured
// values win when both are present.
type StructuredJSONConfig struct {
	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Destination struct {
		URL      string `json:"url"`
		Username string `json:"username"`
		Password string `json:"password"`
	} `json:"destination,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Notify struct {
		Disabled    bool `json:"disabled"`
		NoClipboard bool `json:"no_clipboard"`
	} `json:"notify,omitempty"`

	Log struct {
		Pretty bool `json:"pretty"`
	} `json:"log,omitempty"`

	PyloadURL  string `json:"pyloadUrl,omitempty"`
	PyloadUser string `json:"pyloadUser,omitempty"`
	PyloadPW   string `json:"pyloadPW,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Destination: Destination{
			URL:      firstNonEmpty(jsonCfg.Destination.URL, jsonCfg.PyloadURL),
			Username: firstNonEmpty(jsonCfg.Destination.Username, jsonCfg.PyloadUser),
			Password: firstNonEmpty(jsonCfg.Destination.Password, jsonCfg.PyloadPW),
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Notify: Notify{
			Disabled:    jsonCfg.Notify.Disabled,
			NoClipboard: jsonCfg.Notify.NoClipboard,
		},
		Log: Log{
			Pretty: jsonCfg.Log.Pretty,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

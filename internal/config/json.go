package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type structuredJSONConfig struct {
	Backend struct {
		BaseURL  string   `json:"base_url"`
		Project  string   `json:"project"`
		APIKey   string   `json:"api_key"`
		ClientID string   `json:"client_id"`
		Timeout  Duration `json:"timeout"`
	} `json:"backend,omitempty"`

	Cache struct {
		Path string `json:"path"`
	} `json:"cache,omitempty"`

	Devserver struct {
		Address     string `json:"address"`
		Project     string `json:"project"`
		APIKey      string `json:"api_key"`
		EntriesFile string `json:"entries_file"`
	} `json:"devserver,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg structuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Backend: Backend{
			BaseURL:  jsonCfg.Backend.BaseURL,
			Project:  jsonCfg.Backend.Project,
			APIKey:   jsonCfg.Backend.APIKey,
			ClientID: jsonCfg.Backend.ClientID,
			Timeout:  time.Duration(jsonCfg.Backend.Timeout),
		},
		Cache: Cache{
			Path: jsonCfg.Cache.Path,
		},
		Devserver: Devserver{
			Address:     jsonCfg.Devserver.Address,
			Project:     jsonCfg.Devserver.Project,
			APIKey:      jsonCfg.Devserver.APIKey,
			EntriesFile: jsonCfg.Devserver.EntriesFile,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
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

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of [ClientConfig].
type StructuredJSONConfig struct {
	Adapter struct {
		GraphQLEndpoint string   `json:"graphql_endpoint"`
		RequestTimeout  Duration `json:"request_timeout"`
		UserAgent       string   `json:"user_agent"`
	} `json:"adapter,omitempty"`

	Crypto struct {
		KeyBlockSize int            `json:"key_block_size"`
		Algorithms   map[string]int `json:"algorithms"`
	} `json:"crypto,omitempty"`

	Pagination struct {
		DefaultLimit int `json:"default_limit"`
	} `json:"pagination,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*ClientConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &ClientConfig{
		Adapter: Adapter{
			GraphQLEndpoint: jsonCfg.Adapter.GraphQLEndpoint,
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
			UserAgent:       jsonCfg.Adapter.UserAgent,
		},
		Crypto: Crypto{
			KeyBlockSize: jsonCfg.Crypto.KeyBlockSize,
			Algorithms:   jsonCfg.Crypto.Algorithms,
		},
		Pagination: Pagination{DefaultLimit: jsonCfg.Pagination.DefaultLimit},
		Log:        Log{Level: jsonCfg.Log.Level},
	}

	return cfg, nil
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

// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

const EnvPrefix = "NFB"

var domainPrefix = EnvPrefix + "_DOM_"

type envDocument struct {
	Config RawConfig `json:"nfb"`
}

// loadFromEnv builds the raw configuration from the process environment.
// NFB_CORE_LOGLEVEL=debug becomes {"nfb":{"core":{"loglevel":"debug"}}} and
// every NFB_DOM_<n> holds one JSON encoded domain, read from n=1 until the
// first gap.
func loadFromEnv() (RawConfig, error) {
	doc, err := json.Marshal(envTree(os.Environ()))
	if err != nil {
		return RawConfig{}, err
	}
	var env envDocument
	if err := json.Unmarshal(doc, &env); err != nil {
		return RawConfig{}, err
	}

	domains, err := loadDomainsFromEnv()
	if err != nil {
		return RawConfig{}, err
	}
	env.Config.ChainConfigs = append(env.Config.ChainConfigs, domains...)
	return env.Config, nil
}

func loadDomainsFromEnv() ([]map[string]interface{}, error) {
	domains := []map[string]interface{}{}
	for n := 1; ; n++ {
		key := fmt.Sprintf("%s%d", domainPrefix, n)
		raw, ok := os.LookupEnv(key)
		if !ok || raw == "" {
			return domains, nil
		}
		domain := map[string]interface{}{}
		if err := json.Unmarshal([]byte(raw), &domain); err != nil {
			return nil, fmt.Errorf("invalid domain config in %s: %w", key, err)
		}
		domains = append(domains, domain)
	}
}

// envTree mounts every prefixed variable except domains into a nested map
// keyed by the underscore separated segments of its name.
func envTree(environ []string) map[string]interface{} {
	tree := map[string]interface{}{}
	for _, e := range environ {
		name, value, found := strings.Cut(e, "=")
		if !found || !strings.HasPrefix(name, EnvPrefix+"_") || strings.HasPrefix(name, domainPrefix) {
			continue
		}

		segments := strings.Split(name, "_")
		node := tree
		for _, segment := range segments[:len(segments)-1] {
			child, ok := node[segment].(map[string]interface{})
			if !ok {
				child = map[string]interface{}{}
				node[segment] = child
			}
			node = child
		}
		node[segments[len(segments)-1]] = value
	}
	return tree
}

package services

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ParseFrontMatter splits a content file into its front matter and body.
// The returned format is "yaml" for --- delimited headers and "toml" for +++.
func ParseFrontMatter(content []byte) (map[string]interface{}, string, string, error) {
	str := strings.ReplaceAll(string(content), "\r\n", "\n")

	// Check for YAML (---)
	if header, body, ok := splitFrontMatter(str, "---"); ok {
		var fm map[string]interface{}
		if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
			return nil, "", "", fmt.Errorf("yaml front matter: %w", err)
		}
		return fm, strings.TrimSpace(body), "yaml", nil
	}
	// Check for TOML (+++)
	if header, body, ok := splitFrontMatter(str, "+++"); ok {
		var fm map[string]interface{}
		if err := toml.Unmarshal([]byte(header), &fm); err != nil {
			return nil, "", "", fmt.Errorf("toml front matter: %w", err)
		}
		return fm, strings.TrimSpace(body), "toml", nil
	}

	return nil, "", "", fmt.Errorf("unknown format")
}

// splitFrontMatter cuts str at the delimiter lines that open and close the
// header. The delimiter only counts on a line of its own.
func splitFrontMatter(str, delim string) (string, string, bool) {
	if !strings.HasPrefix(str, delim+"\n") {
		return "", "", false
	}
	rest := str[len(delim)+1:]
	if strings.HasPrefix(rest, delim+"\n") || rest == delim {
		return "", strings.TrimPrefix(rest, delim), true
	}
	if i := strings.Index(rest, "\n"+delim+"\n"); i >= 0 {
		return rest[:i+1], rest[i+len(delim)+2:], true
	}
	if strings.HasSuffix(rest, "\n"+delim) {
		return rest[:len(rest)-len(delim)], "", true
	}
	return "", "", false
}

// frontMatterInt reads a numeric field. YAML decodes integers as int while
// TOML yields int64.
func frontMatterInt(fm map[string]interface{}, key string) (int, bool) {
	switch v := fm[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func frontMatterString(fm map[string]interface{}, key string) string {
	if s, ok := fm[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

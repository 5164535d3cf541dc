package cli

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

//go:embed messages/*.yaml
var messagesFS embed.FS

// DefaultLocale is the only locale shipped with the client.
const DefaultLocale = "pt-BR"

// Catalog maps message keys to user-facing text.
type Catalog map[string]string

// LoadCatalog reads the embedded catalog for locale.
func LoadCatalog(locale string) (Catalog, error) {
	return loadCatalogFS(messagesFS, "messages/"+locale+".yaml")
}

func loadCatalogFS(fsys fs.FS, name string) (Catalog, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", name, err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", name, err)
	}
	if len(c) == 0 {
		return nil, fmt.Errorf("catalog %s is empty", name)
	}
	return c, nil
}

// T formats the message for key. Unknown keys render as the key itself.
func (c Catalog) T(key string, args ...any) string {
	msg, ok := c[key]
	if !ok {
		msg = key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultData []byte

type Data struct {
	Products    []ProductData `yaml:"products"`
	Accounts    []AccountData `yaml:"accounts"`
	AssignRatio float64       `yaml:"assign_ratio"`
}

type ProductData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type AccountData struct {
	Name          string             `yaml:"name"`
	Users         []UserData         `yaml:"users"`
	Subscriptions []SubscriptionData `yaml:"subscriptions"`
}

type UserData struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

type SubscriptionData struct {
	Product  string `yaml:"product"`
	Licenses int    `yaml:"licenses"`
	// IssuedMonthsAgo and ExpiresInMonths default to 1 and 12.
	IssuedMonthsAgo int `yaml:"issued_months_ago"`
	ExpiresInMonths int `yaml:"expires_in_months"`
}

// Default returns the embedded sample data set.
func Default() (*Data, error) {
	return Parse(defaultData)
}

// Load reads a seed file, falling back to the embedded data when path is empty.
func Load(path string) (*Data, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}

	products := make(map[string]struct{}, len(data.Products))
	for _, p := range data.Products {
		products[p.Name] = struct{}{}
	}
	for _, a := range data.Accounts {
		for _, s := range a.Subscriptions {
			if _, ok := products[s.Product]; !ok {
				return nil, fmt.Errorf("account %q subscribes to unknown product %q", a.Name, s.Product)
			}
		}
	}

	if data.AssignRatio < 0 || data.AssignRatio > 1 {
		return nil, fmt.Errorf("assign_ratio must be between 0 and 1, got %v", data.AssignRatio)
	}
	return &data, nil
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package seed

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/suparena/shopstore/models"
)

// Fixtures is the content of a seed file.
type Fixtures struct {
	Products []ProductFixture `yaml:"products"`
	Users    []UserFixture    `yaml:"users"`
	Carts    []CartFixture    `yaml:"carts"`
}

// ProductFixture is a product to create. Without an ID one is generated.
type ProductFixture struct {
	ID                  string `yaml:"id"`
	models.ProductInput `yaml:",inline"`
}

// UserFixture is a user to create. Users are matched on username so a file
// can be applied more than once.
type UserFixture struct {
	models.UserInput `yaml:",inline"`
}

// CartFixture is a cart line to set. The owner is given either by UserID or
// by the Username of a user in the table.
type CartFixture struct {
	UserID    string `yaml:"userId"`
	Username  string `yaml:"username"`
	ProductID string `yaml:"productId"`
	Amount    int64  `yaml:"amount"`
}

// Load reads fixtures from the YAML file at path.
func Load(path string) (Fixtures, error) {
	f, err := os.Open(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("failed to open fixtures: %w", err)
	}
	defer f.Close()

	fx, err := Decode(f)
	if err != nil {
		return Fixtures{}, fmt.Errorf("%s: %w", path, err)
	}
	return fx, nil
}

// Decode reads fixtures from r. Unknown keys are rejected.
func Decode(r io.Reader) (Fixtures, error) {
	var fx Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil && err != io.EOF {
		return Fixtures{}, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return fx, nil
}

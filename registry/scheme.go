/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/suparena/shopstore/errors"
	"github.com/suparena/shopstore/storagemodels"
)

// Identity field names used in key templates.
const (
	FieldProductID = "productId"
	FieldUserID    = "userId"
)

// defaultFieldPattern applies to macros without an explicit pattern.
const defaultFieldPattern = `[^#]+`

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// IDs holds the identity fields of one entity, keyed by field name.
type IDs map[string]string

// Template describes how one kind is laid out in the table.
type Template struct {
	// Partition is the literal partition key shared by every item of the kind.
	Partition string
	// Sort is the sort key template, e.g. "p#{productId}".
	Sort string
	// Fields maps a macro name to the regular expression its value must match.
	Fields map[string]string
}

type compiledTemplate struct {
	Template
	fields []string
	sortRx *regexp.Regexp
}

// Scheme maps entity kinds to their key grammar. A Scheme is immutable once
// populated and safe for concurrent reads.
type Scheme struct {
	kinds map[storagemodels.Kind]*compiledTemplate
}

// NewScheme returns an empty Scheme.
func NewScheme() *Scheme {
	return &Scheme{kinds: make(map[storagemodels.Kind]*compiledTemplate)}
}

// DefaultScheme returns the canonical grammar for products, users and cart lines.
func DefaultScheme() *Scheme {
	s := NewScheme()
	for kind, t := range map[storagemodels.Kind]Template{
		storagemodels.KindProduct: {
			Partition: "product",
			Sort:      "p#{productId}",
			Fields:    map[string]string{FieldProductID: `[0-9]+`},
		},
		storagemodels.KindUser: {
			Partition: "user",
			Sort:      "user#{userId}",
			Fields:    map[string]string{FieldUserID: `[^#]+`},
		},
		storagemodels.KindCart: {
			Partition: "cart",
			Sort:      "product#{productId}#user#{userId}",
			Fields: map[string]string{
				FieldProductID: `[0-9]+`,
				FieldUserID:    `[^#]+`,
			},
		},
	} {
		if err := s.Register(kind, t); err != nil {
			panic(err)
		}
	}
	return s
}

// Register compiles t and associates it with kind.
func (s *Scheme) Register(kind storagemodels.Kind, t Template) error {
	if _, exists := s.kinds[kind]; exists {
		return fmt.Errorf("key scheme: kind %q already registered", kind)
	}
	if t.Partition == "" || macroPattern.MatchString(t.Partition) {
		return fmt.Errorf("key scheme: kind %q needs a literal partition key", kind)
	}

	var (
		rx     strings.Builder
		fields []string
		last   int
	)
	rx.WriteString("^")
	for _, loc := range macroPattern.FindAllStringSubmatchIndex(t.Sort, -1) {
		name := t.Sort[loc[2]:loc[3]]
		pattern, ok := t.Fields[name]
		if !ok {
			pattern = defaultFieldPattern
		}
		rx.WriteString(regexp.QuoteMeta(t.Sort[last:loc[0]]))
		fmt.Fprintf(&rx, "(?P<%s>%s)", name, pattern)
		fields = append(fields, name)
		last = loc[1]
	}
	rx.WriteString(regexp.QuoteMeta(t.Sort[last:]))
	rx.WriteString("$")

	sortRx, err := regexp.Compile(rx.String())
	if err != nil {
		return fmt.Errorf("key scheme: kind %q: %w", kind, err)
	}
	s.kinds[kind] = &compiledTemplate{Template: t, fields: fields, sortRx: sortRx}
	return nil
}

// Kinds returns the registered kinds in lexical order.
func (s *Scheme) Kinds() []storagemodels.Kind {
	kinds := make([]storagemodels.Kind, 0, len(s.kinds))
	for k := range s.kinds {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Partition returns the partition key of kind.
func (s *Scheme) Partition(kind storagemodels.Kind) (string, error) {
	t, err := s.template(kind)
	if err != nil {
		return "", err
	}
	return t.Partition, nil
}

// Encode derives the key of the entity of the given kind identified by ids.
// Missing fields expand to the empty string, yielding a key Decode rejects.
func (s *Scheme) Encode(kind storagemodels.Kind, ids IDs) (storagemodels.Key, error) {
	t, err := s.template(kind)
	if err != nil {
		return storagemodels.Key{}, err
	}
	sk := macroPattern.ReplaceAllStringFunc(t.Sort, func(macro string) string {
		return ids[strings.Trim(macro, "{}")]
	})
	return storagemodels.Key{PK: t.Partition, SK: sk}, nil
}

// Decode recovers the identity fields from a sort key of the given kind.
func (s *Scheme) Decode(kind storagemodels.Kind, sk string) (IDs, error) {
	t, err := s.template(kind)
	if err != nil {
		return nil, err
	}
	m := t.sortRx.FindStringSubmatch(sk)
	if m == nil {
		return nil, errors.NewMalformedKeyError(string(kind), sk, "expected "+t.Sort)
	}
	ids := make(IDs, len(t.fields))
	for i, name := range t.sortRx.SubexpNames() {
		if name != "" {
			ids[name] = m[i]
		}
	}
	return ids, nil
}

func (s *Scheme) template(kind storagemodels.Kind) (*compiledTemplate, error) {
	t, ok := s.kinds[kind]
	if !ok {
		return nil, fmt.Errorf("key scheme: no template registered for kind %q", kind)
	}
	return t, nil
}

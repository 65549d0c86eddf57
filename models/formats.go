/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import (
	"net/url"

	"github.com/go-openapi/strfmt"
)

// FormatImageURL names the format of product image links.
const FormatImageURL = "image-url"

// Formats returns a format registry seeded with the strfmt defaults and the
// formats used by the shop entities.
func Formats() strfmt.Registry {
	formats := strfmt.NewFormats()
	formats.Add(FormatImageURL, new(strfmt.URI), isImageURL)
	return formats
}

func isImageURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

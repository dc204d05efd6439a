package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	feedmeta "github.com/goliatone/go-feedmeta"
	"github.com/goliatone/go-feedmeta/pkg/attrtype"
	"github.com/goliatone/go-feedmeta/pkg/extension"
	pkgfeed "github.com/goliatone/go-feedmeta/pkg/feed"
	"github.com/goliatone/go-feedmeta/pkg/xmlns"
)

var (
	itemTypeName   = xmlns.Metadata("item_type")
	attributesName = xmlns.Metadata("attributes")
)

type violation struct {
	file     string
	location string
	message  string
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [paths...]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(flag.CommandLine.Output(), "\nLint feed documents for item-type metadata problems.\n")
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"examples/fixtures/storefront.xml"}
	}

	ctx := context.Background()

	// Raw-only registry: documents with broken declarations still parse, so
	// one bad attribute does not hide the rest of the report.
	parser := feedmeta.NewParser(pkgfeed.WithRegistry(extension.NewRegistry()))
	types := attrtype.Default()

	var violations []violation
	for _, path := range paths {
		linted, err := lintFile(ctx, parser, types, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		violations = append(violations, linted...)
	}

	if len(violations) > 0 {
		sort.Slice(violations, func(i, j int) bool {
			if violations[i].file == violations[j].file {
				if violations[i].location == violations[j].location {
					return violations[i].message < violations[j].message
				}
				return violations[i].location < violations[j].location
			}
			return violations[i].file < violations[j].file
		})
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "%s: %s -> %s\n", v.file, v.location, v.message)
		}
		os.Exit(1)
	}
}

func lintFile(ctx context.Context, parser pkgfeed.Parser, types attrtype.Lookup, path string) ([]violation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	doc, err := pkgfeed.NewDocument(pkgfeed.SourceFromFile(path), raw)
	if err != nil {
		return nil, fmt.Errorf("construct document: %w", err)
	}

	parsed, err := parser.Parse(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	var result []violation
	for idx, entry := range parsed.Entries {
		if entry == nil {
			continue
		}
		result = append(result, lintEntry(path, entryLabel(entry, idx), entry, types)...)
	}
	return result, nil
}

func entryLabel(entry *pkgfeed.Entry, idx int) string {
	if entry.ID != "" {
		return entry.ID
	}
	if entry.Title != "" {
		return entry.Title
	}
	return fmt.Sprintf("#%d", idx+1)
}

func lintEntry(file, label string, entry *pkgfeed.Entry, types attrtype.Lookup) []violation {
	base := []string{"entry", label}

	var itemTypes, attributeSets []*extension.Raw
	for _, ext := range entry.Extensions.All() {
		raw, ok := ext.(*extension.Raw)
		if !ok {
			continue
		}
		switch raw.XMLName {
		case itemTypeName:
			itemTypes = append(itemTypes, raw)
		case attributesName:
			attributeSets = append(attributeSets, raw)
		}
	}

	var result []violation
	if len(itemTypes) > 1 {
		result = append(result, violation{
			file:     file,
			location: formatLocation(appendPath(base, "gm:item_type")),
			message:  fmt.Sprintf("declared %d times; readers use the first", len(itemTypes)),
		})
	}
	for _, it := range itemTypes {
		if strings.TrimSpace(it.Text()) == "" {
			result = append(result, violation{
				file:     file,
				location: formatLocation(appendPath(base, "gm:item_type")),
				message:  "item type label is empty",
			})
		}
	}

	if len(attributeSets) > 0 && len(itemTypes) == 0 {
		result = append(result, violation{
			file:     file,
			location: formatLocation(appendPath(base, "gm:attributes")),
			message:  "attributes declared without an item type",
		})
	}
	if len(attributeSets) > 1 {
		result = append(result, violation{
			file:     file,
			location: formatLocation(appendPath(base, "gm:attributes")),
			message:  fmt.Sprintf("declared %d times; readers use the first", len(attributeSets)),
		})
	}

	for _, set := range attributeSets {
		result = append(result, lintAttributes(file, appendPath(base, "gm:attributes"), set, types)...)
	}
	return result
}

func lintAttributes(file string, path []string, set *extension.Raw, types attrtype.Lookup) []violation {
	var result []violation
	counts := make(map[string]int)
	position := 0

	for _, child := range set.Children() {
		if child.XMLName.Local != "attribute" {
			continue
		}
		position++

		name, ok := child.AttrValue("name")
		if !ok {
			result = append(result, violation{
				file:     file,
				location: formatLocation(appendPath(path, fmt.Sprintf("attribute[%d]", position))),
				message:  "declaration is missing its name attribute",
			})
			continue
		}
		if strings.TrimSpace(name) == "" {
			result = append(result, violation{
				file:     file,
				location: formatLocation(appendPath(path, fmt.Sprintf("attribute[%d]", position))),
				message:  "attribute name is empty",
			})
			continue
		}
		counts[name]++

		if token, ok := child.AttrValue("type"); ok {
			if _, err := types.ForName(token); err != nil {
				result = append(result, violation{
					file:     file,
					location: formatLocation(appendPath(path, name)),
					message:  fmt.Sprintf("unknown type token %q", token),
				})
			}
		}
	}

	duplicates := make([]string, 0, len(counts))
	for name, count := range counts {
		if count > 1 {
			duplicates = append(duplicates, name)
		}
	}
	sort.Strings(duplicates)
	for _, name := range duplicates {
		result = append(result, violation{
			file:     file,
			location: formatLocation(appendPath(path, name)),
			message:  fmt.Sprintf("declared %d times", counts[name]),
		})
	}
	return result
}

func appendPath(path []string, segment string) []string {
	next := append([]string(nil), path...)
	next = append(next, segment)
	return next
}

func formatLocation(path []string) string {
	return strings.Join(path, " > ")
}

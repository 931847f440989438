package validation

import (
	ozzo "github.com/go-ozzo/ozzo-validation/v4"
)

// bookProperties lists the book properties in the order errors are reported.
var bookProperties = []string{
	"isbn",
	"amazon_url",
	"author",
	"language",
	"pages",
	"publisher",
	"title",
	"year",
}

// mutableRules are the per-property rules shared by create and update.
func mutableRules() map[string][]ozzo.Rule {
	return map[string][]ozzo.Rule{
		"amazon_url": {typeRule("amazon_url", kindString), uriRule("amazon_url")},
		"author":     {typeRule("author", kindString)},
		"language":   {typeRule("language", kindString)},
		"pages":      {typeRule("pages", kindInteger), minimumRule("pages", 1)},
		"publisher":  {typeRule("publisher", kindString)},
		"title":      {typeRule("title", kindString)},
		"year":       {typeRule("year", kindInteger)},
	}
}

var createRule = func() ozzo.MapRule {
	rules := mutableRules()
	keys := []*ozzo.KeyRules{
		ozzo.Key("isbn", typeRule("isbn", kindString), minLengthRule("isbn", 1)),
	}
	for _, name := range bookProperties[1:] {
		key := ozzo.Key(name, rules[name]...)
		if name == "amazon_url" {
			key = key.Optional()
		}
		keys = append(keys, key)
	}
	return ozzo.Map(keys...)
}()

var updateRule = func() ozzo.MapRule {
	rules := mutableRules()
	keys := []*ozzo.KeyRules{
		ozzo.Key("isbn", immutableRule("isbn")).Optional(),
	}
	for _, name := range bookProperties[1:] {
		keys = append(keys, ozzo.Key(name, rules[name]...).Optional())
	}
	return ozzo.Map(keys...)
}()

// ValidateCreate checks a book creation body. Every property except
// amazon_url is required and all must be correctly typed.
func ValidateCreate(obj map[string]any) Result {
	if obj == nil {
		return notAnObject()
	}
	return collect(createRule.Validate(obj), bookProperties)
}

// ValidateUpdate checks a partial update body. Only the supplied properties
// are checked; isbn may not be supplied because it is immutable.
func ValidateUpdate(obj map[string]any) Result {
	if obj == nil {
		return notAnObject()
	}
	return collect(updateRule.Validate(obj), bookProperties)
}

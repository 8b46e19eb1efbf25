// Package options parses the generic `-o key=value` extended options the
// command-line tools accept, and applies them onto typed, tag-annotated
// backend/config structs.
package options

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/blockdiff/deltasync/internal/errors"
)

// Options holds options as key-value pairs, with keys lower-cased and
// trimmed.
type Options map[string]string

// Parse takes the list of options in the form key=value and returns an
// Options type, or an error if parsing failed.
func Parse(in []string) (Options, error) {
	opts := make(Options, len(in))

	for _, opt := range in {
		data := strings.SplitN(opt, "=", 2)
		key := strings.ToLower(strings.TrimSpace(data[0]))
		if len(key) == 0 {
			return Options{}, errors.Fatal("empty key is not a valid option")
		}

		var value string
		if len(data) > 1 {
			value = strings.TrimSpace(data[1])
		}

		if v, ok := opts[key]; ok && v != value {
			return Options{}, errors.Fatalf("key %q present more than once", key)
		}

		opts[key] = value
	}

	return opts, nil
}

// Extract returns a new Options with only the options for the given
// namespace (ns.key → key), leaving options for other namespaces behind.
func (o Options) Extract(ns string) Options {
	l := len(ns)
	opts := make(Options)

	for k, v := range o {
		if len(k) > l && strings.HasPrefix(k, ns) && k[l] == '.' {
			opts[k[l+1:]] = v
		}
	}

	return opts
}

// listOptions lists all options of cfg (using its `option` struct tags)
// together with their help text (the `help` struct tag).
func listOptions(cfg interface{}) (opts []Help) {
	v := reflect.Indirect(reflect.ValueOf(cfg))
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := field.Tag.Get("option")
		if name == "" {
			continue
		}

		opts = append(opts, Help{
			Name: name,
			Text: field.Tag.Get("help"),
		})
	}

	return opts
}

// Help describes one recognized option, for display in CLI help text.
type Help struct {
	Namespace string
	Name      string
	Text      string
}

// appendAllOptions appends the options of cfg, tagged with namespace ns, to
// opts and returns the result sorted by namespace then name.
func appendAllOptions(opts []Help, ns string, cfg interface{}) []Help {
	newOpts := listOptions(cfg)
	for i := range newOpts {
		newOpts[i].Namespace = ns
	}
	opts = append(opts, newOpts...)

	sort.Slice(opts, func(i, j int) bool {
		if opts[i].Namespace != opts[j].Namespace {
			return opts[i].Namespace < opts[j].Namespace
		}
		return opts[i].Name < opts[j].Name
	})

	return opts
}

// Apply sets the options on dst, using the `option` struct tag to match
// keys. If ns is not empty, error messages mention it for context.
func (o Options) Apply(ns string, dst interface{}) error {
	v := reflect.Indirect(reflect.ValueOf(dst))
	t := v.Type()

	fieldsFound := make(map[string]bool)
	for key, value := range o {
		found := false

		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			name := field.Tag.Get("option")
			if name == "" || name != key {
				continue
			}
			found = true
			fieldsFound[name] = true

			switch field.Type.Kind() {
			case reflect.String:
				v.Field(i).SetString(value)
			case reflect.Int:
				n, err := strconv.ParseInt(value, 10, 64)
				if err != nil {
					return err
				}
				v.Field(i).SetInt(n)
			case reflect.Int64:
				if field.Type == reflect.TypeOf(time.Duration(0)) {
					d, err := time.ParseDuration(value)
					if err != nil {
						return err
					}
					v.Field(i).SetInt(int64(d))
					continue
				}
				n, err := strconv.ParseInt(value, 10, 64)
				if err != nil {
					return err
				}
				v.Field(i).SetInt(n)
			case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
				n, err := strconv.ParseUint(value, 10, 64)
				if err != nil {
					return err
				}
				v.Field(i).SetUint(n)
			case reflect.Bool:
				b, err := strconv.ParseBool(value)
				if err != nil {
					return err
				}
				v.Field(i).SetBool(b)
			default:
				return errors.Fatalf("field %q has unsupported type %v", name, field.Type.Kind())
			}
		}

		if !found {
			if ns != "" {
				return errors.Fatalf("option %s.%s is not known", ns, key)
			}
			return errors.Fatalf("option %s is not known", key)
		}
	}

	return nil
}

// Package binding copies struct fields to and from a property store using
// explicit field descriptors.
//
// A Binding lists, for one struct type, which property key each field lives
// under and how to format and parse it:
//
//	var serverBinding = binding.New(
//		binding.String("server.host", func(c *Server) *string { return &c.Host }),
//		binding.Int("server.port", func(c *Server) *int { return &c.Port }).Require(),
//	)
//
//	var cfg Server
//	err := serverBinding.Read(store, &cfg)
//
// Only Property and SetProperty are used, so any type offering those two
// methods works as a source or destination.
package binding

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"simpleprops/props"
)

// ErrMissingKey is returned by Read when a required key is absent.
var ErrMissingKey = errors.New("missing required property")

// Getter is the read side of a property store.
type Getter interface {
	Property(key string) (string, bool)
}

// Setter is the write side of a property store.
type Setter interface {
	SetProperty(key, value string) error
}

// Field describes how one property maps onto a field of T.
type Field[T any] struct {
	Key      string
	Get      func(*T) string
	Set      func(*T, string) error
	Required bool
}

// Require returns a copy of f that must be present when reading.
func (f Field[T]) Require() Field[T] {
	f.Required = true
	return f
}

// Binding maps a set of properties onto T.
type Binding[T any] struct {
	fields []Field[T]
}

// New returns a Binding over fields. It panics on an empty or repeated key
// or a field without accessors.
func New[T any](fields ...Field[T]) *Binding[T] {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Key == "" || f.Get == nil || f.Set == nil {
			panic(fmt.Sprintf("binding: incomplete field %q", f.Key))
		}
		if seen[f.Key] {
			panic(fmt.Sprintf("binding: duplicate key %q", f.Key))
		}
		seen[f.Key] = true
	}
	return &Binding[T]{fields: append([]Field[T](nil), fields...)}
}

// Keys returns the bound keys in declaration order.
func (b *Binding[T]) Keys() []string {
	keys := make([]string, len(b.fields))
	for i, f := range b.fields {
		keys[i] = f.Key
	}
	return keys
}

// Read sets the fields of dst from src. Absent optional keys leave the
// field untouched. Every problem is reported, not just the first.
func (b *Binding[T]) Read(src Getter, dst *T) error {
	var errs []error
	for _, f := range b.fields {
		raw, ok := src.Property(f.Key)
		if !ok {
			if f.Required {
				errs = append(errs, fmt.Errorf("%q: %w", f.Key, ErrMissingKey))
			}
			continue
		}
		if err := f.Set(dst, raw); err != nil {
			var me *props.MappingError
			if errors.As(err, &me) && me.Key == "" {
				me.Key = f.Key
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Write stores every bound field of src into dst.
func (b *Binding[T]) Write(dst Setter, src *T) error {
	for _, f := range b.fields {
		if err := dst.SetProperty(f.Key, f.Get(src)); err != nil {
			return fmt.Errorf("writing %q: %w", f.Key, err)
		}
	}
	return nil
}

// Mapped builds a Field from a pointer accessor, a formatter and a mapper.
func Mapped[T, V any](key string, ptr func(*T) *V, format func(V) string, parse props.Mapper[V]) Field[T] {
	return Field[T]{
		Key: key,
		Get: func(t *T) string { return format(*ptr(t)) },
		Set: func(t *T, raw string) error {
			v, err := parse(raw)
			if err != nil {
				return err
			}
			*ptr(t) = v
			return nil
		},
	}
}

// String binds a string field.
func String[T any](key string, ptr func(*T) *string) Field[T] {
	return Mapped(key, ptr, func(s string) string { return s }, func(raw string) (string, error) { return raw, nil })
}

// Int binds an int field.
func Int[T any](key string, ptr func(*T) *int) Field[T] {
	return Mapped(key, ptr, strconv.Itoa, props.Int)
}

// Int64 binds an int64 field.
func Int64[T any](key string, ptr func(*T) *int64) Field[T] {
	return Mapped(key, ptr, func(n int64) string { return strconv.FormatInt(n, 10) }, props.Int64)
}

// Bool binds a bool field.
func Bool[T any](key string, ptr func(*T) *bool) Field[T] {
	return Mapped(key, ptr, strconv.FormatBool, props.Bool)
}

// Float64 binds a float64 field.
func Float64[T any](key string, ptr func(*T) *float64) Field[T] {
	return Mapped(key, ptr, func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }, props.Float64)
}

// Duration binds a time.Duration field.
func Duration[T any](key string, ptr func(*T) *time.Duration) Field[T] {
	return Mapped(key, ptr, time.Duration.String, props.Duration)
}

// Strings binds a []string field stored as a comma-separated list.
func Strings[T any](key string, ptr func(*T) *[]string) Field[T] {
	return Mapped(key, ptr,
		func(ss []string) string { return strings.Join(ss, ",") },
		func(raw string) ([]string, error) {
			if raw == "" {
				return nil, nil
			}
			parts := strings.Split(raw, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			return parts, nil
		})
}

package binding

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"simpleprops/props"
)

type server struct {
	Host    string
	Port    int
	Debug   bool
	Ratio   float64
	Timeout time.Duration
	MaxBody int64
	Tags    []string
}

var serverBinding = New(
	String("server.host", func(s *server) *string { return &s.Host }),
	Int("server.port", func(s *server) *int { return &s.Port }).Require(),
	Bool("server.debug", func(s *server) *bool { return &s.Debug }),
	Float64("server.ratio", func(s *server) *float64 { return &s.Ratio }),
	Duration("server.timeout", func(s *server) *time.Duration { return &s.Timeout }),
	Int64("server.max_body", func(s *server) *int64 { return &s.MaxBody }),
	Strings("server.tags", func(s *server) *[]string { return &s.Tags }),
)

func TestWriteThenRead(t *testing.T) {
	in := server{
		Host:    "localhost",
		Port:    8080,
		Debug:   true,
		Ratio:   0.25,
		Timeout: 90 * time.Second,
		MaxBody: 1 << 40,
		Tags:    []string{"a", "b"},
	}

	store := props.New()
	if err := serverBinding.Write(store, &in); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := store.Keys(); !reflect.DeepEqual(got, serverBinding.Keys()) {
		t.Errorf("store keys = %v, want %v", got, serverBinding.Keys())
	}
	if v, _ := store.Property("server.timeout"); v != "1m30s" {
		t.Errorf("server.timeout = %q, want %q", v, "1m30s")
	}

	var out server
	if err := serverBinding.Read(store, &out); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Errorf("Read = %+v, want %+v", out, in)
	}
}

func TestReadLeavesAbsentOptionalFields(t *testing.T) {
	store := props.New()
	store.AppendProperty("server.port", "9000")

	out := server{Host: "default"}
	if err := serverBinding.Read(store, &out); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if out.Host != "default" || out.Port != 9000 {
		t.Errorf("Read = %+v, want host default, port 9000", out)
	}
}

func TestReadMissingRequired(t *testing.T) {
	var out server
	err := serverBinding.Read(props.New(), &out)
	if !errors.Is(err, ErrMissingKey) {
		t.Errorf("Read error = %v, want ErrMissingKey", err)
	}
}

func TestReadReportsAllMappingErrors(t *testing.T) {
	store := props.New()
	store.AppendProperty("server.port", "eighty")
	store.AppendProperty("server.debug", "yes")

	var out server
	err := serverBinding.Read(store, &out)

	var me *props.MappingError
	if !errors.As(err, &me) {
		t.Fatalf("Read error = %v, want *props.MappingError", err)
	}
	if me.Key != "server.port" || me.Value != "eighty" {
		t.Errorf("first MappingError = %+v, want server.port/eighty", me)
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok || len(joined.Unwrap()) != 2 {
		t.Errorf("Read error = %v, want two joined errors", err)
	}
}

func TestNewPanicsOnDuplicateKey(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New with duplicate keys did not panic")
		}
	}()
	New(
		String("k", func(s *server) *string { return &s.Host }),
		String("k", func(s *server) *string { return &s.Host }),
	)
}

type failingSetter struct{}

func (failingSetter) SetProperty(string, string) error { return props.ErrInvalidArgument }

func TestWriteStopsOnError(t *testing.T) {
	err := serverBinding.Write(failingSetter{}, &server{})
	if !errors.Is(err, props.ErrInvalidArgument) {
		t.Errorf("Write error = %v, want ErrInvalidArgument", err)
	}
}

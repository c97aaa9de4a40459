package blob

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

// storeUnderTest lets the memory and filesystem drivers share one
// behavioral suite.
func storeUnderTest(t *testing.T, name string) Store {
	t.Helper()
	switch name {
	case "memory":
		return NewMemory()
	case "fs":
		s, err := NewFilesystem(t.TempDir())
		if err != nil {
			t.Fatalf("NewFilesystem: %v", err)
		}
		return s
	}
	t.Fatalf("unknown store %s", name)
	return nil
}

func TestStorePutGetHeadDelete(t *testing.T) {
	for _, name := range []string{"memory", "fs"} {
		t.Run(name, func(t *testing.T) {
			s := storeUnderTest(t, name)
			ctx := context.Background()

			info, err := s.Put(ctx, "exports/task/layout.csv", strings.NewReader("a,b\n1,2\n"),
				PutOptions{ContentType: "text/csv", Metadata: map[string]string{"task": "t1"}})
			if err != nil {
				t.Fatalf("Put: %v", err)
			}
			if info.Size != 8 || info.ContentType != "text/csv" {
				t.Fatalf("put info = %+v", info)
			}

			if _, err := s.Put(ctx, "exports/task/layout.csv", strings.NewReader("x"), PutOptions{}); err == nil {
				t.Fatalf("second Put on same key succeeded")
			}

			head, err := s.Head(ctx, "exports/task/layout.csv")
			if err != nil {
				t.Fatalf("Head: %v", err)
			}
			if head.Metadata["task"] != "t1" {
				t.Fatalf("metadata lost: %+v", head)
			}

			got, rc, err := s.Get(ctx, "exports/task/layout.csv")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			body, err := io.ReadAll(rc)
			_ = rc.Close()
			if err != nil {
				t.Fatalf("read body: %v", err)
			}
			if string(body) != "a,b\n1,2\n" {
				t.Fatalf("body = %q", body)
			}
			if got.Size != 8 {
				t.Fatalf("get info = %+v", got)
			}

			existed, err := s.Delete(ctx, "exports/task/layout.csv")
			if err != nil || !existed {
				t.Fatalf("Delete = (%v, %v)", existed, err)
			}
			existed, err = s.Delete(ctx, "exports/task/layout.csv")
			if err != nil || existed {
				t.Fatalf("repeat Delete = (%v, %v)", existed, err)
			}
			if _, err := s.Head(ctx, "exports/task/layout.csv"); err == nil {
				t.Fatalf("Head after Delete succeeded")
			}
		})
	}
}

func TestStoreListByPrefix(t *testing.T) {
	for _, name := range []string{"memory", "fs"} {
		t.Run(name, func(t *testing.T) {
			s := storeUnderTest(t, name)
			ctx := context.Background()
			for _, key := range []string{"exports/b/mix.csv", "exports/a/layout.csv", "other/x.json"} {
				if _, err := s.Put(ctx, key, strings.NewReader("data"), PutOptions{}); err != nil {
					t.Fatalf("Put %s: %v", key, err)
				}
			}
			infos, err := s.List(ctx, "exports/")
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(infos) != 2 {
				t.Fatalf("got %d entries, want 2", len(infos))
			}
			if infos[0].Key != "exports/a/layout.csv" || infos[1].Key != "exports/b/mix.csv" {
				t.Fatalf("list not ordered by key: %v", infos)
			}
		})
	}
}

func TestFilesystemRejectsTraversalKeys(t *testing.T) {
	s, err := NewFilesystem(t.TempDir())
	if err != nil {
		t.Fatalf("NewFilesystem: %v", err)
	}
	for _, key := range []string{"", "../escape", "/abs/path", "a/../../b"} {
		if _, err := s.Put(context.Background(), key, strings.NewReader("x"), PutOptions{}); err == nil {
			t.Fatalf("key %q accepted", key)
		}
	}
}

func TestFilesystemPresignReturnsLocalURL(t *testing.T) {
	s, err := NewFilesystem(t.TempDir())
	if err != nil {
		t.Fatalf("NewFilesystem: %v", err)
	}
	url, err := s.PresignURL(context.Background(), "exports/t/a.json", SignedURLOptions{})
	if err != nil {
		t.Fatalf("PresignURL: %v", err)
	}
	if !strings.HasPrefix(url, "http://local.blob/") {
		t.Fatalf("url = %s", url)
	}
}

func TestMemoryPresignUnsupported(t *testing.T) {
	s := NewMemory()
	if _, err := s.PresignURL(context.Background(), "k", SignedURLOptions{}); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}
}

func TestOpenSelectsDriverFromEnv(t *testing.T) {
	t.Setenv("PLATECORE_BLOB_DRIVER", "memory")
	s, err := Open(context.Background())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Driver() != DriverMemory {
		t.Fatalf("driver = %s", s.Driver())
	}

	t.Setenv("PLATECORE_BLOB_DRIVER", "fs")
	t.Setenv("PLATECORE_BLOB_FS_ROOT", t.TempDir())
	s, err = Open(context.Background())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Driver() != DriverFilesystem {
		t.Fatalf("driver = %s", s.Driver())
	}

	t.Setenv("PLATECORE_BLOB_DRIVER", "tape")
	if _, err := Open(context.Background()); err == nil {
		t.Fatalf("unknown driver accepted")
	}
}

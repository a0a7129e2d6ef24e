package rng

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestReader_Read(t *testing.T) {
	t.Parallel()

	// Generate 10MiB and see if anything explodes.
	if _, err := io.CopyN(io.Discard, Reader, 1024*1024*10); err != nil {
		t.Fatal(err)
	}
}

func TestReader_Concurrent(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			buf := make([]byte, 4096)
			for j := 0; j < 100; j++ {
				if _, err := Read(buf); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}

	wg.Wait()
}

func TestNew_Whitening(t *testing.T) {
	t.Parallel()

	r := New(bytes.NewReader(make([]byte, 64)))

	a := make([]byte, 32)
	if _, err := io.ReadFull(r, a); err != nil {
		t.Fatal(err)
	}

	b := make([]byte, 32)
	if _, err := io.ReadFull(r, b); err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(a, make([]byte, 32)) {
		t.Fatal("output was not whitened")
	}

	if bytes.Equal(a, b) {
		t.Fatal("ratchet did not advance")
	}
}

func TestNew_SourceFailure(t *testing.T) {
	t.Parallel()

	r := New(bytes.NewReader(make([]byte, 8)))

	_, err := io.ReadFull(r, make([]byte, 16))

	assert.Equal(t, "error", true, errors.Is(err, io.ErrUnexpectedEOF))
}

func BenchmarkRead(b *testing.B) {
	buf := make([]byte, 1024*1024)

	for i := 0; i < b.N; i++ {
		_, _ = Read(buf)
	}
}

// Package mailbox reads mbox files from a directory. File names on disk are
// IMAP-UTF7 encoded; callers see UTF-8 mailbox names.
package mailbox

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/emersion/go-imap/utf7"
	"github.com/emersion/go-mbox"
)

var (
	ErrNotFound        = errors.New("mailbox not found")
	ErrInvalidName     = errors.New("invalid mailbox name")
	ErrMessageNotFound = errors.New("message not found")
)

// Store is a directory of mbox files.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// List returns the decoded names of the mailboxes in the store, sorted.
// Files whose names are not valid IMAP-UTF7 are skipped and reported in
// the returned slice of undecodable names.
func (s *Store) List() (names []string, skipped []string, err error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, nil, fmt.Errorf("reading mailbox directory %s: %w", s.dir, err)
	}

	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		name, err := DecodeName(e.Name())
		if err != nil {
			skipped = append(skipped, e.Name())
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, skipped, nil
}

// Path returns the file path of the named mailbox.
func (s *Store) Path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	encoded, err := EncodeName(name)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrInvalidName, name, err)
	}
	return filepath.Join(s.dir, encoded), nil
}

// Messages returns every message of the named mailbox.
func (s *Store) Messages(name string) ([][]byte, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}
	return ReadFile(path)
}

// Message returns the message at index in the named mailbox.
func (s *Store) Message(name string, index int) ([]byte, error) {
	msgs, err := s.Messages(name)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(msgs) {
		return nil, fmt.Errorf("%w: %s #%d", ErrMessageNotFound, name, index)
	}
	return msgs[index], nil
}

// ReadFile reads all messages of the mbox file at path.
func ReadFile(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("opening mbox %s: %w", path, err)
	}
	defer f.Close()

	msgs, err := ReadMessages(f)
	if err != nil {
		return nil, fmt.Errorf("reading mbox %s: %w", path, err)
	}
	return msgs, nil
}

// ReadMessages splits an mbox stream into messages. The "From " separator
// lines are dropped.
func ReadMessages(r io.Reader) ([][]byte, error) {
	var msgs [][]byte
	reader := mbox.NewReader(r)
	for {
		mr, err := reader.NextMessage()
		if errors.Is(err, io.EOF) {
			return msgs, nil
		}
		if err != nil {
			return msgs, fmt.Errorf("message %d: %w", len(msgs), err)
		}
		data, err := io.ReadAll(mr)
		if err != nil {
			return msgs, fmt.Errorf("message %d: %w", len(msgs), err)
		}
		msgs = append(msgs, data)
	}
}

// SplitHeaders splits a message at the first empty line.
func SplitHeaders(msg []byte) (headers, body string) {
	i, sep := bytes.Index(msg, []byte("\n\n")), 2
	if j := bytes.Index(msg, []byte("\r\n\r\n")); j != -1 && (i == -1 || j < i) {
		i, sep = j, 4
	}
	if i == -1 {
		return string(msg), ""
	}
	return string(msg[:i+sep/2]), string(msg[i+sep:])
}

// DecodeName converts an on-disk IMAP-UTF7 file name to UTF-8.
func DecodeName(file string) (string, error) {
	return utf7.Encoding.NewDecoder().String(file)
}

// EncodeName converts a UTF-8 mailbox name to its on-disk form.
func EncodeName(name string) (string, error) {
	return utf7.Encoding.NewEncoder().String(name)
}

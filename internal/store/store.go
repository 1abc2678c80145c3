// Package store keeps named encoded samples in a Pebble database. Samples
// serve as golden vectors: their bytes must decode to a value that
// encodes back to an equal value.
package store

import (
	"bytes"
	"context"

	"github.com/chaisql/rwf"
	"github.com/chaisql/rwf/internal/logging"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	separator     byte = 0x1F
	samplesPrefix byte = 's'
)

// ErrSampleNotFound is returned when no sample has the requested name.
var ErrSampleNotFound = errors.New("sample not found")

// Sample is an encoded value and the type needed to decode it.
type Sample struct {
	Name    string
	Type    rwf.DataType
	Encoded []byte
}

// Decode returns the value held by the sample. Blank values are not an
// error.
func (s Sample) Decode() (rwf.Primitive, error) {
	p, err := rwf.UnmarshalPrimitive(s.Type, s.Encoded)
	if err != nil && !rwf.IsBlank(err) {
		return rwf.Primitive{}, errors.Wrapf(err, "decode sample %q", s.Name)
	}
	return p, nil
}

// Options configures the store.
type Options struct {
	// FS is the filesystem of the database. Defaults to the disk.
	FS     vfs.FS
	Logger zerolog.Logger
}

// Store is a Pebble database of samples.
type Store struct {
	db     *pebble.DB
	logger zerolog.Logger
}

// Open opens or creates the store at path.
func Open(path string, opts Options) (*Store, error) {
	popts := pebble.Options{
		Logger: logging.PebbleLogger{Logger: opts.Logger},
	}
	if opts.FS != nil {
		popts.FS = opts.FS
	}

	db, err := pebble.Open(path, &popts)
	if err != nil {
		return nil, errors.Wrapf(err, "open store %s", path)
	}

	return &Store{db: db, logger: opts.Logger}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// buildKey returns the key of a sample: the samples prefix, a separator
// and the name.
func buildKey(name string) []byte {
	key := make([]byte, 0, len(name)+2)
	key = append(key, samplesPrefix, separator)
	return append(key, name...)
}

func trimKey(key []byte) string {
	return string(key[2:])
}

// keyUpperBound returns the smallest key greater than every key starting
// with b.
func keyUpperBound(b []byte) []byte {
	end := make([]byte, len(b))
	copy(end, b)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

func encodeValue(t rwf.DataType, encoded []byte) []byte {
	v := make([]byte, 0, len(encoded)+1)
	v = append(v, byte(t))
	return append(v, encoded...)
}

func decodeValue(name string, v []byte) (Sample, error) {
	if len(v) == 0 {
		return Sample{}, errors.Newf("corrupted sample %q", name)
	}

	encoded := make([]byte, len(v)-1)
	copy(encoded, v[1:])
	return Sample{Name: name, Type: rwf.DataType(v[0]), Encoded: encoded}, nil
}

// Put stores a sample, replacing any sample of the same name.
func (s *Store) Put(sample Sample) error {
	if sample.Name == "" {
		return errors.New("cannot store a sample without a name")
	}
	if !sample.Type.IsPrimitive() {
		return errors.Wrapf(rwf.ErrInvalidArgument, "%s is not a primitive type", sample.Type)
	}

	err := s.db.Set(buildKey(sample.Name), encodeValue(sample.Type, sample.Encoded), pebble.Sync)
	if err != nil {
		return err
	}

	s.logger.Debug().Str("sample", sample.Name).Stringer("type", sample.Type).Int("size", len(sample.Encoded)).Msg("stored sample")
	return nil
}

// PutPrimitive encodes p and stores it under name.
func (s *Store) PutPrimitive(name string, p rwf.Primitive) error {
	encoded, err := rwf.MarshalPrimitive(p)
	switch {
	case err != nil && p.IsBlank():
		// blank values without a wire form are stored as zero bytes
		encoded = []byte{}
	case err != nil:
		return errors.Wrapf(err, "encode sample %q", name)
	}

	return s.Put(Sample{Name: name, Type: p.Type(), Encoded: encoded})
}

// Get returns the sample called name. If not found, returns
// ErrSampleNotFound.
func (s *Store) Get(name string) (Sample, error) {
	v, closer, err := s.db.Get(buildKey(name))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return Sample{}, errors.Wrapf(ErrSampleNotFound, "%q", name)
		}
		return Sample{}, err
	}

	sample, err := decodeValue(name, v)
	if cerr := closer.Close(); err == nil {
		err = cerr
	}
	return sample, err
}

// Delete removes the sample called name. If not found, returns
// ErrSampleNotFound.
func (s *Store) Delete(name string) error {
	key := buildKey(name)
	_, closer, err := s.db.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return errors.Wrapf(ErrSampleNotFound, "%q", name)
		}
		return err
	}
	if err := closer.Close(); err != nil {
		return err
	}

	return s.db.Delete(key, pebble.Sync)
}

// List returns the samples whose name starts with prefix, ordered by name.
func (s *Store) List(prefix string) ([]Sample, error) {
	lower := buildKey(prefix)
	it := s.db.NewIter(&pebble.IterOptions{
		LowerBound: lower,
		UpperBound: keyUpperBound(lower),
	})

	var samples []Sample
	for it.First(); it.Valid(); it.Next() {
		sample, err := decodeValue(trimKey(it.Key()), it.Value())
		if err != nil {
			_ = it.Close()
			return nil, err
		}
		samples = append(samples, sample)
	}

	return samples, it.Close()
}

// Result is the outcome of the verification of one sample.
type Result struct {
	Name string
	// Err is nil if the sample survives a decode and encode round trip.
	Err error
}

// Verify decodes every sample whose name starts with prefix, encodes the
// value again and checks that the new bytes decode to an equal value.
// Up to workers samples are verified at the same time.
func (s *Store) Verify(ctx context.Context, prefix string, workers int) ([]Result, error) {
	samples, err := s.List(prefix)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(samples))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i := range samples {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Result{Name: samples[i].Name, Err: verifySample(samples[i])}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, r := range results {
		if r.Err != nil {
			s.logger.Warn().Str("sample", r.Name).Err(r.Err).Msg("sample verification failed")
		}
	}
	return results, nil
}

func verifySample(sample Sample) error {
	p, err := sample.Decode()
	if err != nil {
		return err
	}
	if p.IsBlank() && len(sample.Encoded) == 0 {
		return nil
	}

	encoded, err := rwf.MarshalPrimitive(p)
	if err != nil {
		return errors.Wrap(err, "encode decoded value")
	}
	if bytes.Equal(encoded, sample.Encoded) {
		return nil
	}

	again, err := rwf.UnmarshalPrimitive(sample.Type, encoded)
	if err != nil && !rwf.IsBlank(err) {
		return errors.Wrap(err, "decode encoded value")
	}
	if !again.Equal(p) {
		return errors.Newf("round trip changed %s into %s", p, again)
	}
	return nil
}

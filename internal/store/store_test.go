package store_test

import (
	"context"
	"testing"

	"github.com/chaisql/rwf"
	"github.com/chaisql/rwf/internal/store"
	"github.com/chaisql/rwf/internal/testutil"
	"github.com/chaisql/rwf/internal/testutil/assert"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func putText(t *testing.T, st *store.Store, name string, typ rwf.DataType, text string) {
	t.Helper()

	p, err := rwf.ParsePrimitive(typ, text)
	assert.NoError(t, err)
	assert.NoError(t, st.PutPrimitive(name, p))
}

func TestPutGet(t *testing.T) {
	st := testutil.NewMemStore(t)

	putText(t, st, "real/12.5", rwf.DataTypeReal, "12.5")

	sample, err := st.Get("real/12.5")
	assert.NoError(t, err)
	require.Equal(t, store.Sample{
		Name:    "real/12.5",
		Type:    rwf.DataTypeReal,
		Encoded: testutil.Hex(t, "0d7d"),
	}, sample)

	p, err := sample.Decode()
	assert.NoError(t, err)
	require.Equal(t, "12.5", p.String())

	// replace
	putText(t, st, "real/12.5", rwf.DataTypeReal, "-1")
	sample, err = st.Get("real/12.5")
	assert.NoError(t, err)
	require.Equal(t, testutil.Hex(t, "0eff"), sample.Encoded)
}

func TestPutErrors(t *testing.T) {
	st := testutil.NewMemStore(t)

	err := st.Put(store.Sample{Type: rwf.DataTypeInt, Encoded: []byte{1}})
	assert.Error(t, err)

	err = st.Put(store.Sample{Name: "x", Type: rwf.DataTypeUnknown})
	assert.ErrorIs(t, err, rwf.ErrInvalidArgument)

	err = st.Put(store.Sample{Name: "x", Type: rwf.DataType(15)})
	assert.ErrorIs(t, err, rwf.ErrInvalidArgument)
}

func TestPutBlank(t *testing.T) {
	st := testutil.NewMemStore(t)

	for _, typ := range []rwf.DataType{rwf.DataTypeInt, rwf.DataTypeQos, rwf.DataTypeState, rwf.DataTypeASCIIString} {
		p, err := rwf.BlankPrimitive(typ)
		assert.NoError(t, err)
		assert.NoError(t, st.PutPrimitive("blank/"+typ.String(), p))

		sample, err := st.Get("blank/" + typ.String())
		assert.NoError(t, err)
		require.Empty(t, sample.Encoded)

		got, err := sample.Decode()
		assert.NoError(t, err)
		require.True(t, got.IsBlank())
		require.Equal(t, typ, got.Type())
	}
}

func TestGetNotFound(t *testing.T) {
	st := testutil.NewMemStore(t)

	_, err := st.Get("missing")
	assert.ErrorIs(t, err, store.ErrSampleNotFound)
}

func TestDelete(t *testing.T) {
	st := testutil.NewMemStore(t)

	putText(t, st, "a", rwf.DataTypeInt, "1")
	putText(t, st, "b", rwf.DataTypeInt, "2")

	assert.NoError(t, st.Delete("a"))
	_, err := st.Get("a")
	assert.ErrorIs(t, err, store.ErrSampleNotFound)

	err = st.Delete("a")
	assert.ErrorIs(t, err, store.ErrSampleNotFound)

	_, err = st.Get("b")
	assert.NoError(t, err)
}

func TestList(t *testing.T) {
	st := testutil.NewMemStore(t)

	putText(t, st, "int/b", rwf.DataTypeInt, "2")
	putText(t, st, "uint/a", rwf.DataTypeUInt, "255")
	putText(t, st, "int/a", rwf.DataTypeInt, "-1")
	putText(t, st, "in", rwf.DataTypeEnum, "3")

	tests := []struct {
		prefix string
		want   []store.Sample
	}{
		{"int/", []store.Sample{
			{Name: "int/a", Type: rwf.DataTypeInt, Encoded: []byte{0xff}},
			{Name: "int/b", Type: rwf.DataTypeInt, Encoded: []byte{0x02}},
		}},
		{"in", []store.Sample{
			{Name: "in", Type: rwf.DataTypeEnum, Encoded: []byte{0x03}},
			{Name: "int/a", Type: rwf.DataTypeInt, Encoded: []byte{0xff}},
			{Name: "int/b", Type: rwf.DataTypeInt, Encoded: []byte{0x02}},
		}},
		{"uint/a", []store.Sample{
			{Name: "uint/a", Type: rwf.DataTypeUInt, Encoded: []byte{0xff}},
		}},
		{"x", nil},
	}

	for _, test := range tests {
		t.Run(test.prefix, func(t *testing.T) {
			got, err := st.List(test.prefix)
			assert.NoError(t, err)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}

	all, err := st.List("")
	assert.NoError(t, err)
	require.Len(t, all, 4)
}

func TestVerify(t *testing.T) {
	st := testutil.NewMemStore(t)

	putText(t, st, "ok/qos", rwf.DataTypeQos, "Delayed(5)/TickByTick")
	putText(t, st, "ok/state", rwf.DataTypeState, `Closed/Suspect/NotFound "gone"`)
	putText(t, st, "ok/datetime", rwf.DataTypeDateTime, "2024/03/14 14:30:05:250")

	// a wider encoding than needed decodes to the same value
	assert.NoError(t, st.Put(store.Sample{Name: "ok/wide", Type: rwf.DataTypeInt, Encoded: []byte{0x00, 0x01}}))
	assert.NoError(t, st.Put(store.Sample{Name: "ok/blank", Type: rwf.DataTypeReal, Encoded: []byte{}}))

	assert.NoError(t, st.Put(store.Sample{Name: "bad/state", Type: rwf.DataTypeState, Encoded: []byte{0x09, 0x00}}))
	assert.NoError(t, st.Put(store.Sample{Name: "bad/int", Type: rwf.DataTypeInt, Encoded: make([]byte, 9)}))

	results, err := st.Verify(context.Background(), "ok/", 2)
	assert.NoError(t, err)
	require.Len(t, results, 5)
	for _, r := range results {
		assert.NoErrorf(t, r.Err, "sample %s", r.Name)
	}
	require.Equal(t, "ok/blank", results[0].Name)

	results, err = st.Verify(context.Background(), "bad/", 0)
	assert.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, "bad/int", results[0].Name)
	assert.ErrorIs(t, results[0].Err, rwf.ErrInvalidData)
	require.Equal(t, "bad/state", results[1].Name)
	assert.ErrorIs(t, results[1].Err, rwf.ErrIncompleteData)
}

func TestVerifyCanceled(t *testing.T) {
	st := testutil.NewMemStore(t)
	putText(t, st, "a", rwf.DataTypeInt, "1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := st.Verify(ctx, "", 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReopen(t *testing.T) {
	fs := vfs.NewMem()
	opts := store.Options{FS: fs, Logger: zerolog.New(zerolog.NewTestWriter(t))}

	st, err := store.Open("samples", opts)
	assert.NoError(t, err)
	assert.NoError(t, st.Put(store.Sample{Name: "a", Type: rwf.DataTypeUInt, Encoded: []byte{0x2a}}))
	assert.NoError(t, st.Close())

	st, err = store.Open("samples", opts)
	assert.NoError(t, err)
	defer st.Close()

	sample, err := st.Get("a")
	assert.NoError(t, err)
	require.Equal(t, []byte{0x2a}, sample.Encoded)
}

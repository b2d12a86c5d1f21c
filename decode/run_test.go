package decode

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// frame is a composite decoder exercising every engine feature that is
// independent of chunk boundaries.
func frame() Decoder[[]string] {
	item := OneOf(
		Map(Then(Expect([]byte{0x01}), Uint32LE()), func(v uint32) string { return fmt.Sprintf("a%d", v) }),
		Map(Then(Expect([]byte{0x02}), GetByteString(2)), func(b []byte) string { return fmt.Sprintf("b%x", b) }),
	)
	body := Bind(Uint16BE(), func(n uint16) Decoder[[]string] {
		return Label("body", Isolate(int(n), Many(item)))
	})
	peeked := Bind(LookAhead(Uint8()), func(p uint8) Decoder[string] {
		return Then(Skip(1), Pure(fmt.Sprintf("peek%d", p)))
	})
	return Label("frame", Then(Expect([]byte("HD")), Bind(body, func(items []string) Decoder[[]string] {
		return Map(peeked, func(p string) []string { return append(items, p) })
	})))
}

func frameBytes() []byte {
	b := []byte("HD")
	body := []byte{0x01}
	body = binary.LittleEndian.AppendUint32(body, 7)
	body = append(body, 0x02, 0xbe, 0xef)
	body = append(body, 0x01)
	body = binary.LittleEndian.AppendUint32(body, 300)
	b = binary.BigEndian.AppendUint16(b, uint16(len(body)))
	b = append(b, body...)
	return append(b, 0x7f, 0xee)
}

type outcome struct {
	value []string
	rest  []byte
	err   string
}

func runWhole(d Decoder[[]string], input []byte) outcome {
	v, rest, err := RunWithRemainder(d, input, 0)
	if err != nil {
		return outcome{err: err.Error()}
	}
	return outcome{value: v, rest: rest}
}

func runChunked(d Decoder[[]string], chunks [][]byte) outcome {
	v, rest, err := RunChunks(d, chunks)
	if err != nil {
		return outcome{err: err.Error()}
	}
	if len(rest) == 0 {
		rest = nil
	}
	return outcome{value: v, rest: rest}
}

func normalize(o outcome) outcome {
	if len(o.rest) == 0 {
		o.rest = nil
	}
	return o
}

func TestRun_Frame(t *testing.T) {
	v, rest, err := RunWithRemainder(frame(), frameBytes(), 0)
	require.NoError(t, err)
	require.Equal(t, []string{"a7", "bbeef", "a300", "peek127"}, v)
	require.Equal(t, []byte{0xee}, rest)
}

func TestChunkingInvariance(t *testing.T) {
	inputs := map[string][]byte{
		"valid":     frameBytes(),
		"truncated": frameBytes()[:9],
		"corrupt":   append([]byte("HX"), frameBytes()[2:]...),
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			want := normalize(runWhole(frame(), input))
			for i := 0; i <= len(input); i++ {
				for j := i; j <= len(input); j++ {
					chunks := [][]byte{input[:i], input[i:j], input[j:]}
					got := runChunked(frame(), chunks)
					require.Equal(t, want, got, "split at %d/%d", i, j)
				}
			}
			bytewise := make([][]byte, len(input))
			for i := range input {
				bytewise[i] = input[i : i+1]
			}
			require.Equal(t, want, runChunked(frame(), bytewise))
		})
	}
}

func TestRun_TruncatedFrameTrace(t *testing.T) {
	_, err := Run(frame(), frameBytes()[:9])
	require.Error(t, err)
	require.Equal(t, "too few bytes\nFrom:\tframe\n\tbody\n", err.Error())

	// A window that is not used up fails inside the same labels.
	short := frameBytes()
	short[3]++
	short = append(short[:len(short)-2], 0x00, 0x7f, 0xee)
	_, err = Run(frame(), short)
	require.Error(t, err)
	require.Equal(t, "Failed reading: not all bytes parsed in isolate\nFrom:\tframe\n\tbody\n", err.Error())
}

func TestRunWithRemainder_Offset(t *testing.T) {
	v, rest, err := RunWithRemainder(Uint16BE(), []byte{9, 9, 0x01, 0x02, 0x03}, 2)
	require.NoError(t, err)
	require.Equal(t, uint16(0x0102), v)
	require.Equal(t, []byte{0x03}, rest)

	_, _, err = RunWithRemainder(Uint8(), []byte{1}, 5)
	require.Error(t, err)

	v8, _, err := RunWithRemainder(Uint8(), []byte{4}, -3)
	require.NoError(t, err)
	require.Equal(t, uint8(4), v8)
}

func TestRunChunks_LeftoverIncludesUnrequestedChunks(t *testing.T) {
	v, rest, err := RunChunks(Uint8(), [][]byte{{1}, {2, 3}, nil, {4}})
	require.NoError(t, err)
	require.Equal(t, uint8(1), v)
	require.Equal(t, []byte{2, 3, 4}, rest)

	_, _, err = RunChunks(Uint16BE(), [][]byte{{1}})
	require.Error(t, err)

	_, _, err = RunChunks(Uint8(), nil)
	require.Error(t, err)
}

func TestCount_LargeRepetitionDoesNotNest(t *testing.T) {
	const n = 200000
	v, err := Run(Count(n, Uint8()), make([]byte, n))
	require.NoError(t, err)
	require.Len(t, v, n)

	all, err := Run(Many(Uint8()), make([]byte, n))
	require.NoError(t, err)
	require.Len(t, all, n)
}

func TestCount_ResumesAcrossChunks(t *testing.T) {
	input := make([]byte, 0, 2000)
	for i := 0; i < 1000; i++ {
		input = binary.BigEndian.AppendUint16(input, uint16(i))
	}
	chunks := make([][]byte, 0, len(input)/3+1)
	for i := 0; i < len(input); i += 3 {
		chunks = append(chunks, input[i:min(i+3, len(input))])
	}
	v, rest, err := RunChunks(Count(1000, Uint16BE()), chunks)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Len(t, v, 1000)
	for i, x := range v {
		require.Equal(t, uint16(i), x)
	}
}

func TestCount_Negative(t *testing.T) {
	_, err := Run(Count(-1, Uint8()), nil)
	require.Error(t, err)
}

func TestMany_StopsAtFirstFailure(t *testing.T) {
	d := Many(Then(Expect([]byte{0xaa}), Uint8()))
	v, rest, err := RunWithRemainder(d, []byte{0xaa, 1, 0xaa, 2, 0xbb, 3}, 0)
	require.NoError(t, err)
	require.Equal(t, []uint8{1, 2}, v)
	require.Equal(t, []byte{0xbb, 3}, rest)
}

func TestRun_ReusableDecoder(t *testing.T) {
	d := Count(2, Uint8())
	a, err := Run(d, []byte{1, 2})
	require.NoError(t, err)
	b, err := Run(d, []byte{3, 4})
	require.NoError(t, err)
	require.Equal(t, []uint8{1, 2}, a)
	require.Equal(t, []uint8{3, 4}, b)
}

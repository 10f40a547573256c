package file

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_file "github.com/oshokin/recordkit/pkg/file/mocks"
)

// TestDecode tests the Decode function.
func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		input         string
		fileName      string
		expectedType  string
		expectedData  string
		expectedError error
	}{
		{
			name:         "text file",
			input:        "data:text/plain;base64,aGVsbG8=",
			fileName:     "hello.txt",
			expectedType: "text/plain",
			expectedData: "hello",
		},
		{
			name:         "missing padding",
			input:        "data:image/png;base64,aGVsbG8",
			expectedType: "image/png",
			expectedData: "hello",
		},
		{
			name:          "no media type",
			input:         "data:;base64,aGVsbG8=",
			expectedError: ErrMissingMediaType,
		},
		{
			name:          "no scheme separator",
			input:         "aGVsbG8=",
			expectedError: ErrMissingMediaType,
		},
		{
			name:          "no payload",
			input:         "data:text/plain;base64",
			expectedError: ErrInvalidPayload,
		},
		{
			name:          "broken payload",
			input:         "data:text/plain;base64,!!!",
			expectedError: ErrInvalidPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := Decode(tt.input, tt.fileName)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, f)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.fileName, f.Name())
			assert.Equal(t, tt.expectedType, f.MediaType())
			assert.Equal(t, tt.expectedData, string(f.Data()))
			assert.Equal(t, int64(len(tt.expectedData)), f.Size())
		})
	}
}

// TestFile_Extension tests the Extension method of File.
func TestFile_Extension(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "png", New("a", "image/png", nil).Extension())
	assert.Equal(t, "svg+xml", New("a", "image/svg+xml", nil).Extension())
	assert.Empty(t, New("a", "", nil).Extension())
}

// TestEncode tests the Encode function with an in-memory file.
func TestEncode(t *testing.T) {
	t.Parallel()

	dataURI, err := Encode(context.Background(), New("hello.txt", "text/plain", []byte("hello")))
	require.NoError(t, err)
	assert.Equal(t, "data:text/plain;base64,aGVsbG8=", dataURI)

	decoded, err := Decode(dataURI, "hello.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), decoded.Data())
}

// TestEncode_MockSource tests Encode against a mocked source.
func TestEncode_MockSource(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	src := mock_file.NewMockSource(ctrl)
	src.EXPECT().Open().Return(io.NopCloser(strings.NewReader("hello")), nil)
	src.EXPECT().MediaType().Return("").AnyTimes()
	src.EXPECT().Name().Return("picture.JPG").AnyTimes()

	dataURI, err := Encode(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, "data:image/jpeg;base64,aGVsbG8=", dataURI)
}

// TestEncode_Errors tests the failure paths of Encode.
func TestEncode_Errors(t *testing.T) {
	t.Parallel()

	openErr := errors.New("permission denied")

	t.Run("open fails", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)

		src := mock_file.NewMockSource(ctrl)
		src.EXPECT().Open().Return(nil, openErr)

		_, err := Encode(context.Background(), src)
		require.ErrorIs(t, err, openErr)
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()

		_, err := Encode(context.Background(), New("empty.txt", "text/plain", nil))
		require.ErrorIs(t, err, ErrEmptyPayload)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Encode(ctx, New("a.txt", "text/plain", bytes.Repeat([]byte("a"), 1024)))
		require.ErrorIs(t, err, context.Canceled)
	})
}

// TestResolveMediaType tests the ResolveMediaType function.
func TestResolveMediaType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		declared string
		fileName string
		expected string
	}{
		{name: "known type", declared: "image/png", expected: "image/png"},
		{name: "shared type resolves to table entry", declared: "image/jpeg", expected: "image/jpeg"},
		{name: "known subtype with unknown type", declared: "application/png", expected: "application/png"},
		{name: "unknown type is kept", declared: "application/zip", expected: "application/zip"},
		{name: "type from file name", fileName: "report.pdf", expected: "application/pdf"},
		{name: "nothing known", fileName: "blob", expected: DefaultMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, ResolveMediaType(tt.declared, tt.fileName))
		})
	}
}

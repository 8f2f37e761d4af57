package sheet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuesSource_DropsHeaderRow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"values": [["id","title"],["1","Casa"],["2","Finca"]]}`))
	}))
	defer server.Close()

	src, err := NewSource(ModeValues, server.URL, PropertyColumns, 5*time.Second, nil)
	require.NoError(t, err)

	rows, err := src.FetchRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "1", rows[0][0])
	assert.Equal(t, "Finca", rows[1][1])
}

func TestValuesSource_EmptySheet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"values": [["id","title"]]}`))
	}))
	defer server.Close()

	src, err := NewSource(ModeValues, server.URL, PropertyColumns, 5*time.Second, nil)
	require.NoError(t, err)

	rows, err := src.FetchRows(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestObjectSource_ProjectsThroughColumnMap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"7","title":"Casa nueva","price":"$95,000","features":["Garaje","Jardín"],"images":["abc","def"]}]`))
	}))
	defer server.Close()

	src, err := NewSource(ModeObjects, server.URL, PropertyColumns, 5*time.Second, nil)
	require.NoError(t, err)

	rows, err := src.FetchRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "7", PropertyColumns.Cell(rows[0], "id"))
	assert.Equal(t, "$95,000", PropertyColumns.Cell(rows[0], "price"))
	assert.Equal(t, "Garaje,Jardín", PropertyColumns.Cell(rows[0], "features"))
	assert.Equal(t, "abc\ndef", PropertyColumns.Cell(rows[0], "images"))
}

func TestNewSource_UnknownMode(t *testing.T) {
	_, err := NewSource("magic", "http://localhost", PropertyColumns, time.Second, nil)
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestSource_HTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	src, err := NewSource(ModeValues, server.URL, PropertyColumns, 5*time.Second, nil)
	require.NoError(t, err)

	_, err = src.FetchRows(context.Background())
	assert.Error(t, err)
}

package classifier

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuroscan/mri-api/internal/domain"
)

func writeMetadata(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metadata.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validMetadata = `{
	"input_shape": [1, 300, 300, 3],
	"output_shape": [1, 4],
	"classes": ["glioma", "meningioma", "notumor", "pituitary"],
	"image_size": 300
}`

func TestLoadMetadataValid(t *testing.T) {
	meta, err := loadMetadata(writeMetadata(t, validMetadata))
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 300, 300, 3}, meta.InputShape)
	assert.Equal(t, []int64{1, 4}, meta.OutputShape)
	assert.Equal(t, domain.ClassNames, meta.Classes)
	assert.Equal(t, 300, meta.ImageSize)
}

func TestLoadMetadataMissingFile(t *testing.T) {
	_, err := loadMetadata(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrLoad))
}

func TestLoadMetadataBadJSON(t *testing.T) {
	_, err := loadMetadata(writeMetadata(t, "{not json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrLoad))
}

func TestLoadMetadataWrongInputShape(t *testing.T) {
	_, err := loadMetadata(writeMetadata(t, `{
		"input_shape": [1, 3, 300, 300],
		"output_shape": [1, 4],
		"classes": ["glioma", "meningioma", "notumor", "pituitary"],
		"image_size": 300
	}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrShapeMismatch))
}

func TestLoadMetadataWrongClassCount(t *testing.T) {
	_, err := loadMetadata(writeMetadata(t, `{
		"input_shape": [1, 300, 300, 3],
		"output_shape": [1, 4],
		"classes": ["glioma", "meningioma", "notumor"],
		"image_size": 300
	}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrShapeMismatch))
}

func TestLoadMetadataWrongLabelOrder(t *testing.T) {
	_, err := loadMetadata(writeMetadata(t, `{
		"input_shape": [1, 300, 300, 3],
		"output_shape": [1, 4],
		"classes": ["meningioma", "glioma", "notumor", "pituitary"],
		"image_size": 300
	}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrLoad))
}

func TestLoadMetadataWrongOutputLength(t *testing.T) {
	_, err := loadMetadata(writeMetadata(t, `{
		"input_shape": [1, 300, 300, 3],
		"output_shape": [1, 3],
		"classes": ["glioma", "meningioma", "notumor", "pituitary"],
		"image_size": 300
	}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrShapeMismatch))
}

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"heartbank/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (r *recordingPutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	r.input = params
	r.body, _ = io.ReadAll(params.Body)
	if r.err != nil {
		return nil, r.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestExportKey(t *testing.T) {
	at := time.Date(2026, 10, 19, 8, 5, 3, 0, time.FixedZone("IDT", 3*3600))
	assert.Equal(t, "exports/u1/20261019T050503Z.json", ExportKey("u1", at))
}

func TestUploadExport(t *testing.T) {
	putter := &recordingPutter{}
	s := NewExportStorage(putter, "heartbank-exports")
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	user := &types.User{ID: "u1", Language: types.LanguageHebrew}
	deposits := []*types.Deposit{
		{ID: "d1", UserID: "u1", Content: "תודה על היום", Category: types.DepositCategoryGratitude, CreatedAt: fixed},
	}

	key, err := s.UploadExport(context.Background(), user, deposits)
	require.NoError(t, err)

	assert.Equal(t, "exports/u1/20260102T030405Z.json", key)
	assert.Equal(t, "s3://heartbank-exports/"+key, s.URI(key))
	assert.Equal(t, "heartbank-exports", aws.ToString(putter.input.Bucket))
	assert.Equal(t, key, aws.ToString(putter.input.Key))
	assert.Equal(t, "1", putter.input.Metadata["deposit-count"])

	var doc types.DepositExport
	require.NoError(t, json.Unmarshal(putter.body, &doc))
	assert.Equal(t, types.LanguageHebrew, doc.Language)
	require.Len(t, doc.Deposits, 1)
	assert.Equal(t, "תודה על היום", doc.Deposits[0].Content)
}

func TestUploadExport_EmptyAndFailure(t *testing.T) {
	putter := &recordingPutter{}
	s := NewExportStorage(putter, "b")

	_, err := s.UploadExport(context.Background(), &types.User{ID: "u2"}, nil)
	require.NoError(t, err)
	assert.Contains(t, string(putter.body), `"deposits": []`)

	putter.err = errors.New("access denied")
	_, err = s.UploadExport(context.Background(), &types.User{ID: "u2"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

package assets

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"greenhall/internal/storage"
	storeMocks "greenhall/internal/storage/mocks"
)

func TestUploader_Upload(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		file       FileUpload
		setupMocks func(mStore *storeMocks.MockStorage)
		wantErr    error
		wantURL    string
	}{
		{
			name: "happy path",
			file: FileUpload{
				Reader:      strings.NewReader("png bytes"),
				Filename:    "team photo.png",
				ContentType: "image/png",
				Size:        9,
			},
			setupMocks: func(mStore *storeMocks.MockStorage) {
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, Folder+"/") && strings.HasSuffix(key, "-team_photo.png")
				}), mock.Anything, storage.PutObjectOptions{
					Size:        9,
					ContentType: "image/png",
					Metadata:    map[string]string{"original-filename": "team photo.png"},
				}).Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
					return storage.ObjectInfo{Key: key}
				}, nil)
				mStore.On("ObjectURL", mock.AnythingOfType("string")).
					Return("https://cdn.example.com/site/obj.png")
			},
			wantURL: "https://cdn.example.com/site/obj.png",
		},
		{
			name: "non-image content type rejected before any network call",
			file: FileUpload{
				Reader:      strings.NewReader("%PDF-"),
				Filename:    "report.pdf",
				ContentType: "application/pdf",
				Size:        5,
			},
			wantErr: ErrNotImage,
		},
		{
			name: "image content type with disallowed extension rejected",
			file: FileUpload{
				Reader:      strings.NewReader("bmp"),
				Filename:    "logo.bmp",
				ContentType: "image/bmp",
				Size:        3,
			},
			wantErr: ErrNotImage,
		},
		{
			name: "oversize rejected",
			file: FileUpload{
				Reader:      strings.NewReader("x"),
				Filename:    "big.jpg",
				ContentType: "image/jpeg",
				Size:        MaxUploadSize + 1,
			},
			wantErr: ErrTooLarge,
		},
		{
			name: "storage failure surfaces",
			file: FileUpload{
				Reader:      strings.NewReader("gif"),
				Filename:    "anim.gif",
				ContentType: "image/gif",
				Size:        3,
			},
			setupMocks: func(mStore *storeMocks.MockStorage) {
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("storage fail"))
			},
			wantErr: errors.New("upload to storage: storage fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			if tt.setupMocks != nil {
				tt.setupMocks(mStore)
			}
			u := NewUploader(mStore, nil)

			asset, err := u.Upload(ctx, tt.file)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrNotImage) || errors.Is(tt.wantErr, ErrTooLarge) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.Error(t, err)
					assert.Contains(t, err.Error(), tt.wantErr.Error())
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantURL, asset.URL)
				assert.True(t, strings.HasPrefix(asset.PublicID, Folder+"/"))
			}
			mStore.AssertExpectations(t)
		})
	}
}

func TestUploader_Destroy(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("Delete", ctx, "greenhall-capital/123-a.png").Return(nil)

		res := NewUploader(mStore, nil).Destroy(ctx, "greenhall-capital/123-a.png")

		assert.True(t, res.OK())
		mStore.AssertExpectations(t)
	})

	t.Run("failure is swallowed", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("Delete", ctx, "greenhall-capital/123-a.png").Return(errors.New("gone"))

		res := NewUploader(mStore, nil).Destroy(ctx, "greenhall-capital/123-a.png")

		assert.False(t, res.OK())
		assert.EqualError(t, res.Err, "gone")
		mStore.AssertExpectations(t)
	})

	t.Run("empty id is a no-op", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)

		res := NewUploader(mStore, nil).Destroy(ctx, "")

		assert.True(t, res.OK())
		mStore.AssertNotCalled(t, "Delete")
	})
}

func TestPublicID(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"plain", "logo.png", "greenhall-capital/1700000000000-logo.png"},
		{"whitespace to underscore", "team photo.jpg", "greenhall-capital/1700000000000-team_photo.jpg"},
		{"unsafe chars stripped", "a&b(c)!.svg", "greenhall-capital/1700000000000-abc.svg"},
		{"path stripped", "../../etc/passwd.png", "greenhall-capital/1700000000000-passwd.png"},
		{"empty falls back", "", "greenhall-capital/1700000000000-upload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PublicID(tt.filename, now))
		})
	}
}

package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"teateach_backend/internal/config"
	"teateach_backend/internal/util"
	"teateach_backend/pkg/logger"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// ObjectStore 导出文件的存储后端
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// LocalObjectStore 写入本地目录，返回 /exports/ 下的访问路径
type LocalObjectStore struct {
	Root string
}

func (s *LocalObjectStore) path(key string) (string, error) {
	dst := filepath.Join(s.Root, filepath.FromSlash(key))
	rel, err := filepath.Rel(s.Root, dst)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return dst, nil
}

func (s *LocalObjectStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	dst, err := s.path(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return "", err
	}
	return "/exports/" + key, nil
}

func (s *LocalObjectStore) Delete(ctx context.Context, key string) error {
	dst, err := s.path(key)
	if err != nil {
		return err
	}
	return os.Remove(dst)
}

// MinioObjectStore MinIO 存储实现
type MinioObjectStore struct {
	Bucket string
	Client *minio.Client
}

func NewMinioObjectStore(cfg *config.StorageConfig) (*MinioObjectStore, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: false,
	})
	if err != nil {
		return nil, err
	}
	return &MinioObjectStore{Bucket: cfg.MinioBucket, Client: client}, nil
}

func (s *MinioObjectStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.Client.PutObject(ctx, s.Bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return "/" + s.Bucket + "/" + key, nil
}

func (s *MinioObjectStore) Delete(ctx context.Context, key string) error {
	return s.Client.RemoveObject(ctx, s.Bucket, key, minio.RemoveObjectOptions{})
}

// OSSObjectStore 阿里云 OSS 存储实现
type OSSObjectStore struct {
	Endpoint string
	Bucket   *oss.Bucket
}

func NewOSSObjectStore(cfg *config.StorageConfig) (*OSSObjectStore, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	bucket, err := client.Bucket(cfg.OSSBucket)
	if err != nil {
		return nil, err
	}
	return &OSSObjectStore{Endpoint: cfg.OSSEndpoint, Bucket: bucket}, nil
}

func (s *OSSObjectStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := s.Bucket.PutObject(key, bytes.NewReader(data), oss.ContentType(contentType)); err != nil {
		return "", err
	}
	return fmt.Sprintf("https://%s.%s/%s", s.Bucket.BucketName, s.Endpoint, key), nil
}

func (s *OSSObjectStore) Delete(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(key)
}

// NewObjectStore 按配置选择存储后端，远端初始化失败时回退到本地目录
func NewObjectStore(cfg *config.StorageConfig) ObjectStore {
	switch cfg.Type {
	case util.StorageMinio:
		s, err := NewMinioObjectStore(cfg)
		if err == nil {
			return s
		}
		logger.Log.Warn("MinIO 初始化失败，使用本地存储", zap.Error(err))
	case util.StorageOSS:
		s, err := NewOSSObjectStore(cfg)
		if err == nil {
			return s
		}
		logger.Log.Warn("OSS 初始化失败，使用本地存储", zap.Error(err))
	}
	return &LocalObjectStore{Root: cfg.LocalPath}
}

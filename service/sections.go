package service

import (
	"context"
	"fmt"
	"strings"

	"ichipets/pkg/log"
	"ichipets/types"
	"ichipets/upstream"

	"go.uber.org/zap"
)

// ErrSectionsPartial 旧区块已删但新区块没建全。
// 上游没有事务接口，删除后的失败只能如实上报，由管理端重试保存。
type ErrSectionsPartial struct {
	ProductID int
	Created   int
	Wanted    int
	Cause     error
}

func (e *ErrSectionsPartial) Error() string {
	return fmt.Sprintf("sections for product %d partially saved (%d/%d): %v", e.ProductID, e.Created, e.Wanted, e.Cause)
}

func (e *ErrSectionsPartial) Unwrap() error { return e.Cause }

type ISectionService interface {
	Sections(ctx context.Context, productID int) ([]types.ProductSection, error)
	ReplaceSections(ctx context.Context, token string, productID int, tree []types.ProductSection) error
	UploadImage(ctx context.Context, token string, image upstream.FilePart) (string, error)
}

type SectionService struct {
	Upstream *upstream.Client
}

var _ ISectionService = (*SectionService)(nil)

// Sections 读取并归一排序，渲染端直接可用
func (s *SectionService) Sections(ctx context.Context, productID int) ([]types.ProductSection, error) {
	sections, err := s.Upstream.ProductSections(ctx, productID)
	if err != nil {
		return nil, err
	}
	return NormalizeSections(sections), nil
}

// ReplaceSections 整树替换保存：先删光旧区块，再按归一后的顺序重建。
// 标题为空白的区块跳过不建。
func (s *SectionService) ReplaceSections(ctx context.Context, token string, productID int, tree []types.ProductSection) error {
	if token == "" {
		return upstream.ErrNoToken
	}

	normalized := make([]types.ProductSection, 0, len(tree))
	for _, sec := range NormalizeSections(tree) {
		if strings.TrimSpace(sec.Title) == "" {
			continue
		}
		normalized = append(normalized, sec)
	}

	existing, err := s.Upstream.ProductSections(ctx, productID)
	if err != nil {
		return err
	}
	for _, old := range existing {
		if old.ID == 0 {
			continue
		}
		if err := s.Upstream.DeleteProductSection(ctx, token, old.ID); err != nil {
			return err
		}
	}

	for i, sec := range normalized {
		if err := s.Upstream.CreateProductSection(ctx, token, productID, &sec); err != nil {
			log.L.Error("section recreate failed",
				zap.Int("product_id", productID),
				zap.Int("created", i),
				zap.Int("wanted", len(normalized)),
				zap.Error(err),
			)
			return &ErrSectionsPartial{ProductID: productID, Created: i, Wanted: len(normalized), Cause: err}
		}
	}
	return nil
}

func (s *SectionService) UploadImage(ctx context.Context, token string, image upstream.FilePart) (string, error) {
	return s.Upstream.UploadSectionImage(ctx, token, image)
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/ressKim-io/text-haptics/api-service/internal/domain/entity"
	"github.com/ressKim-io/text-haptics/api-service/internal/domain/repository"
	"github.com/ressKim-io/text-haptics/api-service/internal/domain/service"
	"github.com/ressKim-io/text-haptics/api-service/internal/infrastructure/metrics"
)

// Error definitions for classify usecase
var (
	ErrEmptyText              = errors.New("no text provided")
	ErrTaxonomyInconsistent   = errors.New("classified category has no subclass candidates")
	ErrClassificationNotFound = errors.New("classification not found")
)

// Pipeline outcomes reported to metrics
const (
	outcomeSuccess       = "success"
	outcomeUpstreamError = "upstream_error"
	outcomeTaxonomyError = "taxonomy_error"
	outcomeError         = "error"
)

// ClassifyInput represents the input for classifying a text
type ClassifyInput struct {
	Text string `json:"text"`
}

// ClassificationOutput represents a stored classification
type ClassificationOutput struct {
	ID             uuid.UUID `json:"id"`
	Text           string    `json:"text"`
	Mode           string    `json:"mode"`
	MainClass      string    `json:"main_class,omitempty"`
	SubClass       string    `json:"sub_class"`
	Position       string    `json:"position"`
	FirstPosition  *string   `json:"first_position"`
	SecondPosition *string   `json:"second_position"`
	LatencyMs      int64     `json:"latency_ms"`
	CreatedAt      string    `json:"created_at"`
}

// ClassificationListOutput represents a paginated classification history
type ClassificationListOutput struct {
	Classifications []*ClassificationOutput `json:"classifications"`
	Total           int64                   `json:"total"`
	Limit           int                     `json:"limit"`
	Offset          int                     `json:"offset"`
	HasMore         bool                    `json:"has_more"`
}

// TaxonomyOutput describes the active candidate label sets
type TaxonomyOutput struct {
	Mode           string              `json:"mode"`
	CategoryLabels []string            `json:"category_labels,omitempty"`
	SubclassLabels map[string][]string `json:"subclass_labels,omitempty"`
	ClassLabels    []string            `json:"class_labels,omitempty"`
	PositionLabels []string            `json:"position_labels"`
}

// ClassifyUsecase defines the interface for text-to-haptics business logic
type ClassifyUsecase interface {
	Classify(ctx context.Context, text string) (*entity.HapticResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ClassificationOutput, error)
	List(ctx context.Context, limit, offset int) (*ClassificationListOutput, error)
	Taxonomy() *TaxonomyOutput
}

type classifyUsecase struct {
	taxonomy   *entity.Taxonomy
	classifier *service.ChunkedClassifier
	runTimeout time.Duration
	cache      repository.ResultCache
	repo       repository.ClassificationRepository
	metrics    *metrics.Metrics
	logger     *zap.Logger
	inflight   singleflight.Group
}

// NewClassifyUsecase creates a new classify usecase. repo and m may be nil.
// runTimeout bounds one whole pipeline run; a non-positive value leaves it unbounded.
func NewClassifyUsecase(
	taxonomy *entity.Taxonomy,
	classifier *service.ChunkedClassifier,
	runTimeout time.Duration,
	cache repository.ResultCache,
	repo repository.ClassificationRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) ClassifyUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &classifyUsecase{
		taxonomy:   taxonomy,
		classifier: classifier,
		runTimeout: runTimeout,
		cache:      cache,
		repo:       repo,
		metrics:    m,
		logger:     logger,
	}
}

func (u *classifyUsecase) Classify(ctx context.Context, text string) (*entity.HapticResult, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	if cached, ok := u.cached(ctx, text); ok {
		u.metrics.CacheHit()
		return cached, nil
	}
	u.metrics.CacheMiss()

	// Identical texts in flight share one pipeline run. The run must not be
	// cancelled by whichever caller happened to start it, but each caller
	// stops waiting when its own context ends.
	shared := context.WithoutCancel(ctx)
	ch := u.inflight.DoChan(text, func() (interface{}, error) {
		if cached, ok := u.cached(shared, text); ok {
			return cached, nil
		}
		return u.classifyFresh(shared, text)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*entity.HapticResult), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (u *classifyUsecase) cached(ctx context.Context, text string) (*entity.HapticResult, bool) {
	result, ok, err := u.cache.Get(ctx, text)
	if err != nil {
		u.logger.Warn("Result cache lookup failed", zap.Error(err))
		return nil, false
	}
	return result, ok
}

func (u *classifyUsecase) classifyFresh(ctx context.Context, text string) (*entity.HapticResult, error) {
	start := time.Now()
	runCtx, cancel := u.runContext(ctx)
	result, err := u.run(runCtx, text)
	cancel()
	if err != nil {
		u.recordFailure(err)
		return nil, err
	}
	latencyMs := time.Since(start).Milliseconds()
	u.metrics.ClassificationDone(string(u.taxonomy.Mode), outcomeSuccess)

	if err := u.cache.Set(ctx, text, result); err != nil {
		u.logger.Warn("Result cache store failed", zap.Error(err))
	}

	if u.repo != nil {
		record := entity.NewClassification(text, u.taxonomy.Mode, result, latencyMs)
		if err := u.repo.Create(ctx, record); err != nil {
			u.logger.Warn("Failed to persist classification", zap.Error(err))
		}
	}

	u.logger.Debug("Classified text",
		zap.String("main_class", result.MainClass),
		zap.String("sub_class", result.SubClass),
		zap.String("position", result.Position),
		zap.Int64("latency_ms", latencyMs),
	)
	return result, nil
}

func (u *classifyUsecase) runContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.runTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, u.runTimeout)
}

// run executes the category/subclass, position and keyword stages in order
func (u *classifyUsecase) run(ctx context.Context, text string) (*entity.HapticResult, error) {
	result := &entity.HapticResult{}

	if u.taxonomy.IsHierarchical() {
		category, err := u.classifier.Classify(ctx, text, u.taxonomy.CategoryLabels())
		if err != nil {
			return nil, fmt.Errorf("classify category: %w", err)
		}

		candidates, ok := u.taxonomy.SubclassLabels(category.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrTaxonomyInconsistent, category.Name)
		}

		subclass, err := u.classifier.Classify(ctx, text, candidates)
		if err != nil {
			return nil, fmt.Errorf("classify subclass: %w", err)
		}
		result.MainClass = category.Name
		result.SubClass = subclass.Name
	} else {
		class, err := u.classifier.Classify(ctx, text, u.taxonomy.ClassLabels())
		if err != nil {
			return nil, fmt.Errorf("classify class: %w", err)
		}
		result.SubClass = class.Name
	}

	position, err := u.classifier.Classify(ctx, text, entity.PositionLabels)
	if err != nil {
		return nil, fmt.Errorf("classify position: %w", err)
	}
	result.Position = position.Label

	result.FirstPosition, result.SecondPosition = entity.DeterminePositions(entity.ExtractPositions(text))
	return result, nil
}

func (u *classifyUsecase) recordFailure(err error) {
	mode := string(u.taxonomy.Mode)
	var upstreamErr *service.UpstreamError
	switch {
	case errors.As(err, &upstreamErr):
		u.metrics.ClassificationDone(mode, outcomeUpstreamError)
		u.logger.Error("Classification service request failed",
			zap.Int("status_code", upstreamErr.StatusCode),
			zap.Error(err),
		)
	case errors.Is(err, ErrTaxonomyInconsistent):
		u.metrics.ClassificationDone(mode, outcomeTaxonomyError)
		u.logger.Error("Taxonomy is inconsistent", zap.Error(err))
	default:
		u.metrics.ClassificationDone(mode, outcomeError)
		u.logger.Error("Classification failed", zap.Error(err))
	}
}

func (u *classifyUsecase) GetByID(ctx context.Context, id uuid.UUID) (*ClassificationOutput, error) {
	if u.repo == nil {
		return nil, ErrClassificationNotFound
	}

	classification, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if classification == nil {
		return nil, ErrClassificationNotFound
	}

	return toClassificationOutput(classification), nil
}

func (u *classifyUsecase) List(ctx context.Context, limit, offset int) (*ClassificationListOutput, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	if u.repo == nil {
		return &ClassificationListOutput{
			Classifications: []*ClassificationOutput{},
			Limit:           limit,
			Offset:          offset,
		}, nil
	}

	classifications, total, err := u.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	outputs := make([]*ClassificationOutput, len(classifications))
	for i, c := range classifications {
		outputs[i] = toClassificationOutput(c)
	}

	return &ClassificationListOutput{
		Classifications: outputs,
		Total:           total,
		Limit:           limit,
		Offset:          offset,
		HasMore:         int64(offset+limit) < total,
	}, nil
}

func (u *classifyUsecase) Taxonomy() *TaxonomyOutput {
	out := &TaxonomyOutput{
		Mode:           string(u.taxonomy.Mode),
		PositionLabels: entity.PositionLabels,
	}
	if !u.taxonomy.IsHierarchical() {
		out.ClassLabels = u.taxonomy.ClassLabels()
		return out
	}

	out.CategoryLabels = u.taxonomy.CategoryLabels()
	out.SubclassLabels = make(map[string][]string, len(u.taxonomy.Categories))
	for _, c := range u.taxonomy.Categories {
		out.SubclassLabels[c.Name], _ = u.taxonomy.SubclassLabels(c.Name)
	}
	return out
}

func toClassificationOutput(c *entity.Classification) *ClassificationOutput {
	return &ClassificationOutput{
		ID:             c.ID,
		Text:           c.Text,
		Mode:           string(c.Mode),
		MainClass:      c.MainClass,
		SubClass:       c.SubClass,
		Position:       c.Position,
		FirstPosition:  c.FirstPosition,
		SecondPosition: c.SecondPosition,
		LatencyMs:      c.LatencyMs,
		CreatedAt:      c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

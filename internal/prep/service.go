package prep

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrResourceOwner = errors.New("resource must have exactly one owner")
)

// Service is the CRUD layer for the prep tree. Deleting a topic or a path
// cascades through everything it owns; nothing else in the system cascades.
type Service struct {
	DB *gorm.DB
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// --- paths ---

type PathInput struct {
	Title       string
	Description string
	Icon        string
	Order       int
}

type UpdatePathInput struct {
	Title       *string
	Description *string
	Icon        *string
	Order       *int
}

func (s *Service) ListPaths(ctx context.Context) ([]Path, error) {
	var rows []Path
	if err := s.DB.WithContext(ctx).Order("sort_order asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) GetPath(ctx context.Context, id string) (*Path, error) {
	var p Path
	if err := s.DB.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (s *Service) CreatePath(ctx context.Context, in PathInput) (*Path, error) {
	p := Path{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
		Order:       in.Order,
	}
	if err := s.DB.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err
	}
	return s.GetPath(ctx, p.ID)
}

func (s *Service) UpdatePath(ctx context.Context, id string, in UpdatePathInput) (*Path, error) {
	var p Path
	if err := s.DB.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Icon != nil {
		p.Icon = *in.Icon
	}
	if in.Order != nil {
		p.Order = *in.Order
	}

	if err := s.DB.WithContext(ctx).Save(&p).Error; err != nil {
		return nil, err
	}
	return s.GetPath(ctx, id)
}

// DeletePath removes the path, its path-level resources, and every topic it
// owns together with that topic's questions and resources.
func (s *Service) DeletePath(ctx context.Context, id string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p Path
		if err := tx.First(&p, "id = ?", id).Error; err != nil {
			return notFound(err)
		}

		var topicIDs []string
		if err := tx.Model(&Topic{}).Where("path_id = ?", id).Pluck("id", &topicIDs).Error; err != nil {
			return err
		}

		if len(topicIDs) > 0 {
			if err := tx.Where("topic_id IN ?", topicIDs).Delete(&Question{}).Error; err != nil {
				return err
			}
			if err := tx.Where("topic_id IN ?", topicIDs).Delete(&Resource{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", topicIDs).Delete(&Topic{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("path_id = ?", id).Delete(&Resource{}).Error; err != nil {
			return err
		}

		return tx.Delete(&Path{}, "id = ?", id).Error
	})
}

// --- topics ---

type TopicInput struct {
	PathID      string
	Title       string
	Description string
	Order       int
}

type UpdateTopicInput struct {
	Title       *string
	Description *string
	Order       *int
}

func (s *Service) ListTopics(ctx context.Context, pathID string) ([]Topic, error) {
	q := s.DB.WithContext(ctx).Model(&Topic{})
	if pathID != "" {
		q = q.Where("path_id = ?", pathID)
	}

	var rows []Topic
	if err := q.Order("sort_order asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) GetTopic(ctx context.Context, id string) (*Topic, error) {
	var t Topic
	if err := s.DB.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (s *Service) CreateTopic(ctx context.Context, in TopicInput) (*Topic, error) {
	if _, err := s.GetPath(ctx, in.PathID); err != nil {
		return nil, err
	}

	t := Topic{
		ID:          uuid.NewString(),
		PathID:      in.PathID,
		Title:       in.Title,
		Description: in.Description,
		Order:       in.Order,
	}
	if err := s.DB.WithContext(ctx).Create(&t).Error; err != nil {
		return nil, err
	}
	return s.GetTopic(ctx, t.ID)
}

func (s *Service) UpdateTopic(ctx context.Context, id string, in UpdateTopicInput) (*Topic, error) {
	var t Topic
	if err := s.DB.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}

	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Order != nil {
		t.Order = *in.Order
	}

	if err := s.DB.WithContext(ctx).Save(&t).Error; err != nil {
		return nil, err
	}
	return s.GetTopic(ctx, id)
}

// DeleteTopic removes the topic and every question and resource it owns.
func (s *Service) DeleteTopic(ctx context.Context, id string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var t Topic
		if err := tx.First(&t, "id = ?", id).Error; err != nil {
			return notFound(err)
		}

		if err := tx.Where("topic_id = ?", id).Delete(&Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("topic_id = ?", id).Delete(&Resource{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Topic{}, "id = ?", id).Error
	})
}

// --- questions ---

type QuestionInput struct {
	TopicID    string
	Question   string
	Answer     string
	Difficulty string
	Tags       []string
	BlogSlug   string
	Order      int
}

type UpdateQuestionInput struct {
	Question   *string
	Answer     *string
	Difficulty *string
	Tags       *[]string
	BlogSlug   *string
	Order      *int
}

func (s *Service) ListQuestions(ctx context.Context, topicID string) ([]Question, error) {
	q := s.DB.WithContext(ctx).Model(&Question{})
	if topicID != "" {
		q = q.Where("topic_id = ?", topicID)
	}

	var rows []Question
	if err := q.Order("sort_order asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) GetQuestion(ctx context.Context, id string) (*Question, error) {
	var qn Question
	if err := s.DB.WithContext(ctx).First(&qn, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &qn, nil
}

func (s *Service) CreateQuestion(ctx context.Context, in QuestionInput) (*Question, error) {
	if _, err := s.GetTopic(ctx, in.TopicID); err != nil {
		return nil, err
	}

	qn := Question{
		ID:         uuid.NewString(),
		TopicID:    in.TopicID,
		Question:   in.Question,
		Answer:     in.Answer,
		Difficulty: in.Difficulty,
		Tags:       in.Tags,
		BlogSlug:   in.BlogSlug,
		Order:      in.Order,
	}
	if qn.Tags == nil {
		qn.Tags = []string{}
	}
	if err := s.DB.WithContext(ctx).Create(&qn).Error; err != nil {
		return nil, err
	}
	return s.GetQuestion(ctx, qn.ID)
}

func (s *Service) UpdateQuestion(ctx context.Context, id string, in UpdateQuestionInput) (*Question, error) {
	var qn Question
	if err := s.DB.WithContext(ctx).First(&qn, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}

	if in.Question != nil {
		qn.Question = *in.Question
	}
	if in.Answer != nil {
		qn.Answer = *in.Answer
	}
	if in.Difficulty != nil {
		qn.Difficulty = *in.Difficulty
	}
	if in.Tags != nil {
		qn.Tags = *in.Tags
	}
	if in.BlogSlug != nil {
		qn.BlogSlug = *in.BlogSlug
	}
	if in.Order != nil {
		qn.Order = *in.Order
	}

	if err := s.DB.WithContext(ctx).Save(&qn).Error; err != nil {
		return nil, err
	}
	return s.GetQuestion(ctx, id)
}

func (s *Service) DeleteQuestion(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Delete(&Question{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- resources ---

type ResourceInput struct {
	PathID      *string
	TopicID     *string
	Title       string
	URL         string
	Kind        string
	Description string
}

type UpdateResourceInput struct {
	Title       *string
	URL         *string
	Kind        *string
	Description *string
}

func (s *Service) ListResources(ctx context.Context, pathID, topicID string) ([]Resource, error) {
	q := s.DB.WithContext(ctx).Model(&Resource{})
	if pathID != "" {
		q = q.Where("path_id = ?", pathID)
	}
	if topicID != "" {
		q = q.Where("topic_id = ?", topicID)
	}

	var rows []Resource
	if err := q.Order("created_at asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) GetResource(ctx context.Context, id string) (*Resource, error) {
	var r Resource
	if err := s.DB.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &r, nil
}

func (s *Service) CreateResource(ctx context.Context, in ResourceInput) (*Resource, error) {
	if (in.PathID == nil) == (in.TopicID == nil) {
		return nil, ErrResourceOwner
	}
	if in.PathID != nil {
		if _, err := s.GetPath(ctx, *in.PathID); err != nil {
			return nil, err
		}
	}
	if in.TopicID != nil {
		if _, err := s.GetTopic(ctx, *in.TopicID); err != nil {
			return nil, err
		}
	}

	r := Resource{
		ID:          uuid.NewString(),
		PathID:      in.PathID,
		TopicID:     in.TopicID,
		Title:       in.Title,
		URL:         in.URL,
		Kind:        in.Kind,
		Description: in.Description,
	}
	if err := s.DB.WithContext(ctx).Create(&r).Error; err != nil {
		return nil, err
	}
	return s.GetResource(ctx, r.ID)
}

func (s *Service) UpdateResource(ctx context.Context, id string, in UpdateResourceInput) (*Resource, error) {
	var r Resource
	if err := s.DB.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}

	if in.Title != nil {
		r.Title = *in.Title
	}
	if in.URL != nil {
		r.URL = *in.URL
	}
	if in.Kind != nil {
		r.Kind = *in.Kind
	}
	if in.Description != nil {
		r.Description = *in.Description
	}

	if err := s.DB.WithContext(ctx).Save(&r).Error; err != nil {
		return nil, err
	}
	return s.GetResource(ctx, id)
}

func (s *Service) DeleteResource(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Delete(&Resource{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

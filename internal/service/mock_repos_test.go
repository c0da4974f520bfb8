package service

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/johnnymaxbr/forumhub-challenge-alura/internal/model"
	"github.com/johnnymaxbr/forumhub-challenge-alura/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	// 模拟 LOWER(email) 唯一索引
	for _, u := range m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == 0 {
		user.ID = m.nextID
		m.nextID++
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses map[uint]*model.Course
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[uint]*model.Course)}
}

func (m *mockCourseRepo) GetByID(_ context.Context, id uint) (*model.Course, error) {
	if c, ok := m.courses[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) GetByName(_ context.Context, name string) (*model.Course, error) {
	for _, c := range m.courses {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(_ context.Context, category string, includeInactive bool) ([]model.Course, error) {
	var result []model.Course
	for _, c := range m.courses {
		if category != "" && c.Category != category {
			continue
		}
		if !includeInactive && !c.Active {
			continue
		}
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ── Mock ReplyRepository ──

type mockReplyRepo struct {
	replies map[uint]*model.Reply
	nextID  uint
	users   *mockUserRepo
}

func newMockReplyRepo(users *mockUserRepo) *mockReplyRepo {
	return &mockReplyRepo{replies: make(map[uint]*model.Reply), nextID: 1, users: users}
}

func (m *mockReplyRepo) Create(_ context.Context, reply *model.Reply) error {
	if reply.ID == 0 {
		reply.ID = m.nextID
		m.nextID++
	}
	m.replies[reply.ID] = reply
	return nil
}

func (m *mockReplyRepo) GetByID(_ context.Context, id uint) (*model.Reply, error) {
	if r, ok := m.replies[id]; ok {
		cp := *r
		cp.Author = m.users.users[r.AuthorID]
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockReplyRepo) ListByTopic(_ context.Context, topicID uint) ([]model.Reply, error) {
	var result []model.Reply
	for _, r := range m.replies {
		if r.TopicID != topicID {
			continue
		}
		cp := *r
		cp.Author = m.users.users[r.AuthorID]
		result = append(result, cp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (m *mockReplyRepo) Update(_ context.Context, reply *model.Reply) error {
	cp := *reply
	cp.Author = nil
	m.replies[reply.ID] = &cp
	return nil
}

// ── Mock TopicRepository ──

type mockTopicRepo struct {
	topics  map[uint]*model.Topic
	nextID  uint
	users   *mockUserRepo
	courses *mockCourseRepo
	replies *mockReplyRepo
}

func newMockTopicRepo(users *mockUserRepo, courses *mockCourseRepo, replies *mockReplyRepo) *mockTopicRepo {
	return &mockTopicRepo{
		topics:  make(map[uint]*model.Topic),
		nextID:  1,
		users:   users,
		courses: courses,
		replies: replies,
	}
}

func (m *mockTopicRepo) Create(_ context.Context, topic *model.Topic) error {
	// 模拟 (titulo, mensagem) 唯一索引
	for _, t := range m.topics {
		if t.Title == topic.Title && t.Message == topic.Message {
			return gorm.ErrDuplicatedKey
		}
	}
	if topic.ID == 0 {
		topic.ID = m.nextID
		m.nextID++
	}
	m.topics[topic.ID] = topic
	return nil
}

// hydrate 模拟 Preload：填充 Author 与 Course 关联
func (m *mockTopicRepo) hydrate(t *model.Topic) *model.Topic {
	cp := *t
	cp.Author = m.users.users[t.AuthorID]
	cp.Course = m.courses.courses[t.CourseID]
	return &cp
}

func (m *mockTopicRepo) GetByID(_ context.Context, id uint) (*model.Topic, error) {
	if t, ok := m.topics[id]; ok {
		return m.hydrate(t), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTopicRepo) GetByIDWithReplies(ctx context.Context, id uint) (*model.Topic, error) {
	t, ok := m.topics[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := m.hydrate(t)
	replies, _ := m.replies.ListByTopic(ctx, id)
	cp.Replies = replies
	return cp, nil
}

func (m *mockTopicRepo) ExistsByTitleAndMessage(_ context.Context, title, message string, excludeID uint) (bool, error) {
	for _, t := range m.topics {
		if t.ID == excludeID {
			continue
		}
		if t.Title == title && t.Message == message {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockTopicRepo) List(_ context.Context, filters *repository.TopicFilters, offset, limit int) ([]model.Topic, int64, error) {
	var matched []*model.Topic
	for _, t := range m.topics {
		if filters != nil {
			if filters.CourseName != "" {
				course := m.courses.courses[t.CourseID]
				if course == nil || course.Name != filters.CourseName {
					continue
				}
			}
			if filters.Year != 0 && t.CreatedAt.Year() != filters.Year {
				continue
			}
		}
		matched = append(matched, t)
	}

	// 创建时间倒序
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))

	if offset >= len(matched) {
		return []model.Topic{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	result := make([]model.Topic, 0, end-offset)
	for _, t := range matched[offset:end] {
		result = append(result, *m.hydrate(t))
	}
	return result, total, nil
}

func (m *mockTopicRepo) Update(_ context.Context, topic *model.Topic) error {
	cp := *topic
	cp.Author = nil
	cp.Course = nil
	cp.Replies = nil
	m.topics[topic.ID] = &cp
	return nil
}

func (m *mockTopicRepo) Delete(_ context.Context, id uint) error {
	delete(m.topics, id)
	// 外键级联删除回复
	for rid, r := range m.replies.replies {
		if r.TopicID == id {
			delete(m.replies.replies, rid)
		}
	}
	return nil
}

// ── 聚合辅助 ──

type testMocks struct {
	users   *mockUserRepo
	courses *mockCourseRepo
	topics  *mockTopicRepo
	replies *mockReplyRepo
}

func newTestRepository() (*repository.Repository, *testMocks) {
	users := newMockUserRepo()
	courses := newMockCourseRepo()
	replies := newMockReplyRepo(users)
	topics := newMockTopicRepo(users, courses, replies)

	repo := &repository.Repository{
		User:   users,
		Course: courses,
		Topic:  topics,
		Reply:  replies,
	}
	return repo, &testMocks{users: users, courses: courses, topics: topics, replies: replies}
}

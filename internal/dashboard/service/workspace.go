package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/farmops/farmboard/internal/dashboard/domain"
	"github.com/farmops/farmboard/internal/dashboard/store"
	"github.com/farmops/farmboard/pkg/idx"
)

// WorkspaceService is the repository for the workspace singleton. Every
// mutator reads the whole document, applies its change and writes the whole
// document back. The first mutator call seeds a default workspace if none
// exists yet: detect-then-create, never overwriting an existing one.
type WorkspaceService struct {
	Store       store.Store
	Projections *Projections

	mu sync.Mutex
}

type TaskPatch struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *int
	AssigneeID  *string
}

// mutate runs fn against the current workspace under the write lock,
// lazy-seeding a default one first if needed, then persists and reprojects.
func (s *WorkspaceService) mutate(ctx context.Context, actor domain.User, fn func(ws *domain.Workspace) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ws domain.Workspace
	s.Store.Get(ctx, store.KeyWorkspace, &ws)
	if ws.ID == "" {
		ws = defaultWorkspace(actor)
	}

	if err := fn(&ws); err != nil {
		return err
	}
	ws.UpdatedAt = time.Now().UTC()

	if err := s.Store.Set(ctx, store.KeyWorkspace, ws); err != nil {
		return err
	}
	s.Projections.SetWorkspace(ws)
	return nil
}

// AddTask appends a task and records the creation in the activity log.
func (s *WorkspaceService) AddTask(ctx context.Context, actor domain.User, task domain.Task) (domain.Task, error) {
	now := time.Now().UTC()
	if task.Status == "" {
		task.Status = domain.TaskTodo
	}
	task.ID = idx.New().String()
	task.CreatedBy = actor.ID
	task.CreatedAt = now
	task.UpdatedAt = now

	err := s.mutate(ctx, actor, func(ws *domain.Workspace) error {
		ws.Tasks = append(ws.Tasks, task)
		appendActivity(ws, actor, "task_created", task.Title)
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// UpdateTask merges patch over the task; an absent id is a silent no-op.
func (s *WorkspaceService) UpdateTask(ctx context.Context, actor domain.User, id string, patch TaskPatch) error {
	return s.mutate(ctx, actor, func(ws *domain.Workspace) error {
		for i := range ws.Tasks {
			if ws.Tasks[i].ID != id {
				continue
			}
			if patch.Title != nil {
				ws.Tasks[i].Title = *patch.Title
			}
			if patch.Description != nil {
				ws.Tasks[i].Description = *patch.Description
			}
			if patch.Status != nil {
				ws.Tasks[i].Status = *patch.Status
			}
			if patch.Priority != nil {
				ws.Tasks[i].Priority = *patch.Priority
			}
			if patch.AssigneeID != nil {
				ws.Tasks[i].AssigneeID = *patch.AssigneeID
			}
			ws.Tasks[i].UpdatedAt = time.Now().UTC()
			break
		}
		return nil
	})
}

// DeleteTask removes the task and records the deletion in the activity log.
// Idempotent for absent ids.
func (s *WorkspaceService) DeleteTask(ctx context.Context, actor domain.User, id string) error {
	return s.mutate(ctx, actor, func(ws *domain.Workspace) error {
		for i := range ws.Tasks {
			if ws.Tasks[i].ID == id {
				title := ws.Tasks[i].Title
				ws.Tasks = slices.Delete(ws.Tasks, i, i+1)
				appendActivity(ws, actor, "task_deleted", title)
				break
			}
		}
		return nil
	})
}

// AddTaskComment appends a comment to a task; a missing task is an error.
func (s *WorkspaceService) AddTaskComment(ctx context.Context, actor domain.User, taskID, text string) (domain.Comment, error) {
	comment := domain.Comment{
		ID:         idx.New().String(),
		Text:       text,
		AuthorID:   actor.ID,
		AuthorName: actor.Name,
		CreatedAt:  time.Now().UTC(),
	}

	err := s.mutate(ctx, actor, func(ws *domain.Workspace) error {
		for i := range ws.Tasks {
			if ws.Tasks[i].ID == taskID {
				ws.Tasks[i].Comments = append(ws.Tasks[i].Comments, comment)
				ws.Tasks[i].UpdatedAt = comment.CreatedAt
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return domain.Comment{}, err
	}
	return comment, nil
}

func (s *WorkspaceService) AddTeamMember(ctx context.Context, actor domain.User, member domain.TeamMember) (domain.TeamMember, error) {
	member.ID = idx.New().String()
	member.JoinedAt = time.Now().UTC()

	err := s.mutate(ctx, actor, func(ws *domain.Workspace) error {
		ws.Team = append(ws.Team, member)
		return nil
	})
	if err != nil {
		return domain.TeamMember{}, err
	}
	return member, nil
}

// RemoveTeamMember drops the member; idempotent for absent ids.
func (s *WorkspaceService) RemoveTeamMember(ctx context.Context, actor domain.User, id string) error {
	return s.mutate(ctx, actor, func(ws *domain.Workspace) error {
		ws.Team = slices.DeleteFunc(ws.Team, func(m domain.TeamMember) bool {
			return m.ID == id
		})
		return nil
	})
}

// LogActivity appends a free-form entry to the activity log.
func (s *WorkspaceService) LogActivity(ctx context.Context, actor domain.User, action, detail string) error {
	return s.mutate(ctx, actor, func(ws *domain.Workspace) error {
		appendActivity(ws, actor, action, detail)
		return nil
	})
}

func (s *WorkspaceService) CreateChannel(ctx context.Context, actor domain.User, name, topic string) (domain.ChatChannel, error) {
	ch := domain.ChatChannel{
		ID:        idx.New().String(),
		Name:      name,
		Topic:     topic,
		CreatedBy: actor.ID,
		CreatedAt: time.Now().UTC(),
	}

	err := s.mutate(ctx, actor, func(ws *domain.Workspace) error {
		ws.Channels = append(ws.Channels, ch)
		return nil
	})
	if err != nil {
		return domain.ChatChannel{}, err
	}
	return ch, nil
}

// UpdateChannel renames a channel or changes its topic; absent id is a no-op.
func (s *WorkspaceService) UpdateChannel(ctx context.Context, actor domain.User, id string, name, topic *string) error {
	return s.mutate(ctx, actor, func(ws *domain.Workspace) error {
		for i := range ws.Channels {
			if ws.Channels[i].ID != id {
				continue
			}
			if name != nil {
				ws.Channels[i].Name = *name
			}
			if topic != nil {
				ws.Channels[i].Topic = *topic
			}
			break
		}
		return nil
	})
}

// DeleteChannel removes the channel and every message posted to it, as one
// compound write. Idempotent for absent ids.
func (s *WorkspaceService) DeleteChannel(ctx context.Context, actor domain.User, id string) error {
	return s.mutate(ctx, actor, func(ws *domain.Workspace) error {
		ws.Channels = slices.DeleteFunc(ws.Channels, func(ch domain.ChatChannel) bool {
			return ch.ID == id
		})
		ws.Chat = slices.DeleteFunc(ws.Chat, func(m domain.ChatMessage) bool {
			return m.ChannelID == id
		})
		return nil
	})
}

// AddChatMessage posts a message to a channel; a missing channel is an error.
func (s *WorkspaceService) AddChatMessage(ctx context.Context, actor domain.User, channelID, text, replyTo string) (domain.ChatMessage, error) {
	msg := domain.ChatMessage{
		ID:        idx.New().String(),
		ChannelID: channelID,
		AuthorID:  actor.ID,
		Author:    actor.Name,
		Text:      text,
		ReplyTo:   replyTo,
		CreatedAt: time.Now().UTC(),
	}

	err := s.mutate(ctx, actor, func(ws *domain.Workspace) error {
		if !slices.ContainsFunc(ws.Channels, func(ch domain.ChatChannel) bool {
			return ch.ID == channelID
		}) {
			return ErrNotFound
		}
		ws.Chat = append(ws.Chat, msg)
		return nil
	})
	if err != nil {
		return domain.ChatMessage{}, err
	}
	return msg, nil
}

// AddReaction records that the acting user reacted with emoji. Reactions are
// a set: reacting twice with the same emoji is a no-op, never a duplicate.
func (s *WorkspaceService) AddReaction(ctx context.Context, actor domain.User, messageID, emoji string) error {
	return s.mutate(ctx, actor, func(ws *domain.Workspace) error {
		for i := range ws.Chat {
			if ws.Chat[i].ID != messageID {
				continue
			}
			if ws.Chat[i].Reactions == nil {
				ws.Chat[i].Reactions = map[string][]string{}
			}
			users := ws.Chat[i].Reactions[emoji]
			if !slices.Contains(users, actor.ID) {
				ws.Chat[i].Reactions[emoji] = append(users, actor.ID)
			}
			return nil
		}
		return ErrNotFound
	})
}

// RemoveReaction drops the acting user from the emoji's reaction set,
// deleting the emoji entry when it empties.
func (s *WorkspaceService) RemoveReaction(ctx context.Context, actor domain.User, messageID, emoji string) error {
	return s.mutate(ctx, actor, func(ws *domain.Workspace) error {
		for i := range ws.Chat {
			if ws.Chat[i].ID != messageID {
				continue
			}
			users := ws.Chat[i].Reactions[emoji]
			users = slices.DeleteFunc(users, func(id string) bool { return id == actor.ID })
			if len(users) == 0 {
				delete(ws.Chat[i].Reactions, emoji)
			} else {
				ws.Chat[i].Reactions[emoji] = users
			}
			return nil
		}
		return ErrNotFound
	})
}

func appendActivity(ws *domain.Workspace, actor domain.User, action, detail string) {
	ws.Activity = append(ws.Activity, domain.Activity{
		ID:        idx.New().String(),
		Action:    action,
		Detail:    detail,
		ActorID:   actor.ID,
		ActorName: actor.Name,
		CreatedAt: time.Now().UTC(),
	})
}

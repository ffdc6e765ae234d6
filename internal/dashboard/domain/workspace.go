package domain

import "time"

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskReview     TaskStatus = "review"
	TaskDone       TaskStatus = "done"
	TaskBlocked    TaskStatus = "blocked"
)

type TeamMember struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	Name     string    `json:"name"`
	Role     Role      `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	Priority    int        `json:"priority"`
	AssigneeID  string     `json:"assigneeId,omitempty"`
	Comments    []Comment  `json:"comments,omitempty"`
	CreatedBy   string     `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Activity is the workspace's informal audit log for collaboration events,
// parallel to but independent from Account.StatusHistory.
type Activity struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail,omitempty"`
	ActorID   string    `json:"actorId"`
	ActorName string    `json:"actorName"`
	CreatedAt time.Time `json:"createdAt"`
}

type ChatChannel struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Topic     string    `json:"topic,omitempty"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type ChatMessage struct {
	ID        string    `json:"id"`
	ChannelID string    `json:"channelId"`
	AuthorID  string    `json:"authorId"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	ReplyTo   string    `json:"replyTo,omitempty"` // back-reference, not ownership

	// Reactions maps emoji to the set of user ids who reacted. A user appears
	// at most once per emoji.
	Reactions map[string][]string `json:"reactions,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Workspace is the singleton aggregate holding everything the team shares.
// It is read and written as one document per mutation.
type Workspace struct {
	ID        string        `json:"id"`
	OwnerID   string        `json:"ownerId"`
	Team      []TeamMember  `json:"team"`
	Tasks     []Task        `json:"tasks"`
	Activity  []Activity    `json:"activity"`
	Chat      []ChatMessage `json:"chat"`
	Channels  []ChatChannel `json:"channels"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

package http

import (
	"net/http"

	"github.com/farmops/farmboard/internal/dashboard/domain"
	"github.com/farmops/farmboard/internal/dashboard/service"
	"github.com/farmops/farmboard/pkg/dashsdk"
	"github.com/farmops/farmboard/pkg/httpx"
)

// WorkspaceHandler handles the shared workspace aggregate: tasks, team
// membership, the activity log and chat.
type WorkspaceHandler struct {
	Workspace   *service.WorkspaceService
	Projections *service.Projections
}

// HandleGet handles GET /v1/workspace
//
//	@Summary		Get workspace
//	@Description	Returns the whole workspace document. The workspace is shared
//	@Description	by every role without filtering.
//	@Tags			Workspace
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	domain.Workspace
//	@Router			/v1/workspace [get].
func (h *WorkspaceHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.Projections.Workspace())
}

// HandleAddTask handles POST /v1/workspace/tasks
//
//	@Summary	Create task
//	@Tags		Workspace
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dashsdk.CreateTaskRequest	true	"Task fields"
//	@Success	201		{object}	domain.Task
//	@Failure	400		{object}	dashsdk.ErrorResponse	"error, error_description"
//	@Router		/v1/workspace/tasks [post].
func (h *WorkspaceHandler) HandleAddTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req dashsdk.CreateTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title == "" {
		writeBadRequest(w, "Task title is required")
		return
	}

	task, err := h.Workspace.AddTask(r.Context(), actor, domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		Priority:    req.Priority,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, task)
}

// HandleUpdateTask handles PATCH /v1/workspace/tasks/{id}
//
//	@Summary		Update task
//	@Description	Partial update; absent fields are left unchanged. An unknown
//	@Description	id is silently ignored.
//	@Tags			Workspace
//	@Accept			json
//	@Security		BearerAuth
//	@Param			id		path	string						true	"Task id"
//	@Param			request	body	dashsdk.UpdateTaskRequest	true	"Fields to change"
//	@Success		204
//	@Failure		400	{object}	dashsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/workspace/tasks/{id} [patch].
func (h *WorkspaceHandler) HandleUpdateTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req dashsdk.UpdateTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.Workspace.UpdateTask(r.Context(), actor, r.PathValue("id"), service.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      optTaskStatus(req.Status),
		Priority:    req.Priority,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDeleteTask handles DELETE /v1/workspace/tasks/{id}
//
//	@Summary	Delete task
//	@Tags		Workspace
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Task id"
//	@Success	204
//	@Router		/v1/workspace/tasks/{id} [delete].
func (h *WorkspaceHandler) HandleDeleteTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	if err := h.Workspace.DeleteTask(r.Context(), actor, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleAddTaskComment handles POST /v1/workspace/tasks/{id}/comments
//
//	@Summary	Comment on task
//	@Tags		Workspace
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string						true	"Task id"
//	@Param		request	body		dashsdk.AddCommentRequest	true	"Comment text"
//	@Success	201		{object}	domain.Comment
//	@Failure	400		{object}	dashsdk.ErrorResponse	"error, error_description"
//	@Failure	404		{object}	dashsdk.ErrorResponse	"Task not found"
//	@Router		/v1/workspace/tasks/{id}/comments [post].
func (h *WorkspaceHandler) HandleAddTaskComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req dashsdk.AddCommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Text == "" {
		writeBadRequest(w, "Comment text is required")
		return
	}

	comment, err := h.Workspace.AddTaskComment(r.Context(), actor, r.PathValue("id"), req.Text)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, comment)
}

// HandleAddTeamMember handles POST /v1/workspace/team
//
//	@Summary		Add team member
//	@Description	Requires the admin or leader role.
//	@Tags			Workspace
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dashsdk.AddTeamMemberRequest	true	"Member fields"
//	@Success		201		{object}	domain.TeamMember
//	@Failure		400		{object}	dashsdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	dashsdk.ErrorResponse	"Insufficient role"
//	@Router			/v1/workspace/team [post].
func (h *WorkspaceHandler) HandleAddTeamMember(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req dashsdk.AddTeamMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.UserID == "" || req.Name == "" {
		writeBadRequest(w, "Member userId and name are required")
		return
	}

	member, err := h.Workspace.AddTeamMember(r.Context(), actor, domain.TeamMember{
		UserID: req.UserID,
		Name:   req.Name,
		Role:   domain.Role(req.Role),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, member)
}

// HandleRemoveTeamMember handles DELETE /v1/workspace/team/{id}
//
//	@Summary		Remove team member
//	@Description	Requires the admin or leader role. Idempotent.
//	@Tags			Workspace
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Membership id"
//	@Success		204
//	@Failure		403	{object}	dashsdk.ErrorResponse	"Insufficient role"
//	@Router			/v1/workspace/team/{id} [delete].
func (h *WorkspaceHandler) HandleRemoveTeamMember(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	if err := h.Workspace.RemoveTeamMember(r.Context(), actor, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleCreateChannel handles POST /v1/workspace/channels
//
//	@Summary	Create chat channel
//	@Tags		Workspace
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dashsdk.CreateChannelRequest	true	"Channel fields"
//	@Success	201		{object}	domain.ChatChannel
//	@Failure	400		{object}	dashsdk.ErrorResponse	"error, error_description"
//	@Router		/v1/workspace/channels [post].
func (h *WorkspaceHandler) HandleCreateChannel(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req dashsdk.CreateChannelRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeBadRequest(w, "Channel name is required")
		return
	}

	ch, err := h.Workspace.CreateChannel(r.Context(), actor, req.Name, req.Topic)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, ch)
}

// HandleUpdateChannel handles PATCH /v1/workspace/channels/{id}
//
//	@Summary	Update chat channel
//	@Tags		Workspace
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id		path	string							true	"Channel id"
//	@Param		request	body	dashsdk.UpdateChannelRequest	true	"Fields to change"
//	@Success	204
//	@Failure	400	{object}	dashsdk.ErrorResponse	"error, error_description"
//	@Router		/v1/workspace/channels/{id} [patch].
func (h *WorkspaceHandler) HandleUpdateChannel(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req dashsdk.UpdateChannelRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.Workspace.UpdateChannel(r.Context(), actor, r.PathValue("id"), req.Name, req.Topic); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDeleteChannel handles DELETE /v1/workspace/channels/{id}
//
//	@Summary		Delete chat channel
//	@Description	Deletes the channel and every message posted to it.
//	@Tags			Workspace
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Channel id"
//	@Success		204
//	@Router			/v1/workspace/channels/{id} [delete].
func (h *WorkspaceHandler) HandleDeleteChannel(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	if err := h.Workspace.DeleteChannel(r.Context(), actor, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandlePostMessage handles POST /v1/workspace/messages
//
//	@Summary	Post chat message
//	@Tags		Workspace
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dashsdk.PostMessageRequest	true	"Message fields"
//	@Success	201		{object}	domain.ChatMessage
//	@Failure	400		{object}	dashsdk.ErrorResponse	"error, error_description"
//	@Failure	404		{object}	dashsdk.ErrorResponse	"Channel not found"
//	@Router		/v1/workspace/messages [post].
func (h *WorkspaceHandler) HandlePostMessage(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req dashsdk.PostMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ChannelID == "" || req.Text == "" {
		writeBadRequest(w, "Message channelId and text are required")
		return
	}

	msg, err := h.Workspace.AddChatMessage(r.Context(), actor, req.ChannelID, req.Text, req.ReplyTo)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, msg)
}

// HandleAddReaction handles POST /v1/workspace/messages/{id}/reactions
//
//	@Summary		React to message
//	@Description	Reactions form a per-emoji set of users; reacting twice with
//	@Description	the same emoji is a no-op.
//	@Tags			Workspace
//	@Accept			json
//	@Security		BearerAuth
//	@Param			id		path	string					true	"Message id"
//	@Param			request	body	dashsdk.ReactionRequest	true	"Emoji"
//	@Success		204
//	@Failure		400	{object}	dashsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	dashsdk.ErrorResponse	"Message not found"
//	@Router			/v1/workspace/messages/{id}/reactions [post].
func (h *WorkspaceHandler) HandleAddReaction(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req dashsdk.ReactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Emoji == "" {
		writeBadRequest(w, "Reaction emoji is required")
		return
	}

	if err := h.Workspace.AddReaction(r.Context(), actor, r.PathValue("id"), req.Emoji); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleRemoveReaction handles DELETE /v1/workspace/messages/{id}/reactions
//
//	@Summary	Remove reaction
//	@Tags		Workspace
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id		path	string					true	"Message id"
//	@Param		request	body	dashsdk.ReactionRequest	true	"Emoji"
//	@Success	204
//	@Failure	404	{object}	dashsdk.ErrorResponse	"Message not found"
//	@Router		/v1/workspace/messages/{id}/reactions [delete].
func (h *WorkspaceHandler) HandleRemoveReaction(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req dashsdk.ReactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Emoji == "" {
		writeBadRequest(w, "Reaction emoji is required")
		return
	}

	if err := h.Workspace.RemoveReaction(r.Context(), actor, r.PathValue("id"), req.Emoji); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package tracker

import (
	"context"
	"testing"
	"time"

	"github.com/example/taskboard/domain/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_Create(t *testing.T) {
	projects, _ := newTestServices(t)
	ctx := context.Background()

	p, err := projects.Create(ctx, "alice", ProjectInput{
		Title:       "Launch",
		Description: "Q3 launch plan",
		DueDate:     "2024-03-15",
	})
	require.NoError(t, err)

	assert.Equal(t, "Launch", p.Title)
	assert.Equal(t, "alice", p.OwnerID)
	assert.Equal(t, project.StatusActive, p.Status, "status defaults to active")
	require.NotNil(t, p.DueDate)
	assert.Equal(t, "2024-03-15", p.DueDate.Format(dueDateLayout))
	assert.NotEmpty(t, p.ID)
}

func TestProjectService_Create_OwnerIsAlwaysTheActor(t *testing.T) {
	// The input has no owner field at all; whatever a client sends upstream,
	// the project belongs to the acting user.
	projects, _ := newTestServices(t)
	ctx := context.Background()

	p, err := projects.Create(ctx, "alice", ProjectInput{Title: "Spoofed"})
	require.NoError(t, err)
	assert.Equal(t, "alice", p.OwnerID)
}

func TestProjectService_Create_Validation(t *testing.T) {
	projects, _ := newTestServices(t)
	ctx := context.Background()

	longTitle := make([]rune, 101)
	for i := range longTitle {
		longTitle[i] = 'x'
	}

	tests := []struct {
		name    string
		input   ProjectInput
		wantErr error
	}{
		{
			name:    "missing title",
			input:   ProjectInput{},
			wantErr: ErrTitleRequired,
		},
		{
			name:    "title over 100 characters",
			input:   ProjectInput{Title: string(longTitle)},
			wantErr: ErrTitleTooLong,
		},
		{
			name:    "unknown status",
			input:   ProjectInput{Title: "Launch", Status: "paused"},
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "malformed due date",
			input:   ProjectInput{Title: "Launch", DueDate: "15/03/2024"},
			wantErr: ErrInvalidDueDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := projects.Create(ctx, "alice", tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProjectService_Create_DuplicateTitle(t *testing.T) {
	projects, _ := newTestServices(t)
	ctx := context.Background()

	_, err := projects.Create(ctx, "alice", ProjectInput{Title: "Launch"})
	require.NoError(t, err)

	t.Run("same title same owner fails", func(t *testing.T) {
		_, err := projects.Create(ctx, "alice", ProjectInput{Title: "Launch"})
		assert.ErrorIs(t, err, ErrDuplicateTitle)
	})

	t.Run("same title different owner succeeds", func(t *testing.T) {
		p, err := projects.Create(ctx, "bob", ProjectInput{Title: "Launch"})
		require.NoError(t, err)
		assert.Equal(t, "bob", p.OwnerID)
	})
}

func TestProjectService_List(t *testing.T) {
	projects, _ := newTestServices(t)
	ctx := context.Background()

	for _, title := range []string{"First", "Second", "Third"} {
		_, err := projects.Create(ctx, "alice", ProjectInput{Title: title})
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond) // distinct created_at for ordering
	}
	_, err := projects.Create(ctx, "bob", ProjectInput{Title: "Bob's"})
	require.NoError(t, err)

	list, err := projects.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 3, "only alice's projects are visible")

	// Newest first.
	assert.Equal(t, "Third", list[0].Title)
	assert.Equal(t, "Second", list[1].Title)
	assert.Equal(t, "First", list[2].Title)

	empty, err := projects.List(ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestProjectService_Get_UniformNotFound(t *testing.T) {
	projects, _ := newTestServices(t)
	ctx := context.Background()

	p, err := projects.Create(ctx, "alice", ProjectInput{Title: "Launch"})
	require.NoError(t, err)

	t.Run("owner gets the project", func(t *testing.T) {
		got, err := projects.Get(ctx, "alice", p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
	})

	t.Run("missing id is not found", func(t *testing.T) {
		_, err := projects.Get(ctx, "alice", "no-such-id")
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})

	t.Run("foreign owner gets the same not found", func(t *testing.T) {
		// Existence must not leak to non-owners.
		_, err := projects.Get(ctx, "bob", p.ID)
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})
}

func TestProjectService_Update(t *testing.T) {
	projects, _ := newTestServices(t)
	ctx := context.Background()

	p, err := projects.Create(ctx, "alice", ProjectInput{
		Title:       "Launch",
		Description: "original",
	})
	require.NoError(t, err)

	t.Run("partial update touches only supplied fields", func(t *testing.T) {
		status := "completed"
		updated, err := projects.Update(ctx, "alice", p.ID, ProjectPatch{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, project.StatusCompleted, updated.Status)
		assert.Equal(t, "Launch", updated.Title)
		assert.Equal(t, "original", updated.Description)
		assert.Equal(t, "alice", updated.OwnerID)
	})

	t.Run("title change re-checks uniqueness", func(t *testing.T) {
		_, err := projects.Create(ctx, "alice", ProjectInput{Title: "Other"})
		require.NoError(t, err)

		title := "Other"
		_, err = projects.Update(ctx, "alice", p.ID, ProjectPatch{Title: &title})
		assert.ErrorIs(t, err, ErrDuplicateTitle)
	})

	t.Run("keeping the same title is not a duplicate", func(t *testing.T) {
		title := "Launch"
		desc := "revised"
		updated, err := projects.Update(ctx, "alice", p.ID, ProjectPatch{Title: &title, Description: &desc})
		require.NoError(t, err)
		assert.Equal(t, "revised", updated.Description)
	})

	t.Run("non-owner gets not found, not forbidden", func(t *testing.T) {
		desc := "hacked"
		_, err := projects.Update(ctx, "bob", p.ID, ProjectPatch{Description: &desc})
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		status := "paused"
		_, err := projects.Update(ctx, "alice", p.ID, ProjectPatch{Status: &status})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestProjectService_Delete_Cascades(t *testing.T) {
	projects, tasks := newTestServices(t)
	ctx := context.Background()

	p, err := projects.Create(ctx, "alice", ProjectInput{Title: "Launch"})
	require.NoError(t, err)
	other, err := projects.Create(ctx, "alice", ProjectInput{Title: "Other"})
	require.NoError(t, err)

	for _, title := range []string{"one", "two"} {
		_, err := tasks.Create(ctx, "alice", TaskInput{Title: title, ProjectID: p.ID})
		require.NoError(t, err)
	}
	survivor, err := tasks.Create(ctx, "alice", TaskInput{Title: "survivor", ProjectID: other.ID})
	require.NoError(t, err)

	require.NoError(t, projects.Delete(ctx, "alice", p.ID))

	_, err = projects.Get(ctx, "alice", p.ID)
	assert.ErrorIs(t, err, ErrProjectNotFound)

	// No task referencing the deleted project remains retrievable.
	remaining, err := tasks.List(ctx, "alice", TaskFilters{})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, survivor.ID, remaining[0].ID)

	t.Run("non-owner cannot delete", func(t *testing.T) {
		err := projects.Delete(ctx, "bob", other.ID)
		assert.ErrorIs(t, err, ErrProjectNotFound)

		_, err = projects.Get(ctx, "alice", other.ID)
		assert.NoError(t, err, "project survives a foreign delete attempt")
	})
}

func TestProjectService_SetStatus(t *testing.T) {
	projects, _ := newTestServices(t)
	ctx := context.Background()

	p, err := projects.Create(ctx, "alice", ProjectInput{Title: "Launch"})
	require.NoError(t, err)

	updated, err := projects.SetStatus(ctx, "alice", p.ID, "archived")
	require.NoError(t, err)
	assert.Equal(t, project.StatusArchived, updated.Status)

	_, err = projects.SetStatus(ctx, "alice", p.ID, "bogus")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = projects.SetStatus(ctx, "bob", p.ID, "active")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteService_UpdateKeepsCreatedAt(t *testing.T) {
	r := newTestRepos(testDB(t))
	books := newBookService(r, false)
	svc := NewNoteService(r.notes, r.books)
	ctx := context.Background()

	b := sampleBook("筆記測試")
	require.NoError(t, books.Create(ctx, b))

	note, err := svc.Create(ctx, b.ID, "第一章", "初稿")
	require.NoError(t, err)
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)

	require.NoError(t, svc.Update(ctx, note.ID, "第一章（修訂）", "改寫後的內容"))

	_, notes, err := svc.ListForBook(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "第一章（修訂）", notes[0].Title)
	assert.Equal(t, "改寫後的內容", notes[0].Content)
	assert.Equal(t, note.CreatedAt, notes[0].CreatedAt, "created_at is immutable")
}

func TestNoteService_UpdateNotFound(t *testing.T) {
	r := newTestRepos(testDB(t))
	svc := NewNoteService(r.notes, r.books)

	err := svc.Update(context.Background(), 777, "t", "c")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteService_ListForBook(t *testing.T) {
	r := newTestRepos(testDB(t))
	books := newBookService(r, false)
	svc := NewNoteService(r.notes, r.books)
	ctx := context.Background()

	b := sampleBook("有筆記的書")
	require.NoError(t, books.Create(ctx, b))
	_, err := svc.Create(ctx, b.ID, "摘要", "內容一")
	require.NoError(t, err)
	_, err = svc.Create(ctx, b.ID, "心得", "內容二")
	require.NoError(t, err)

	book, notes, err := svc.ListForBook(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "有筆記的書", book.BookTitle)
	assert.Len(t, notes, 2)

	// listing for an unknown book reports the book, not an empty list
	_, _, err = svc.ListForBook(ctx, b.ID+50)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestHistoryService_CreateAndDelete(t *testing.T) {
	r := newTestRepos(testDB(t))
	svc := NewHistoryService(r.history)
	ctx := context.Background()

	h, err := svc.Create(ctx, 1, 25, "讀完第二章")
	require.NoError(t, err)
	assert.NotEmpty(t, h.TimeStamp, "timestamp is server-assigned")

	require.NoError(t, svc.Delete(ctx, h.ID))
	assert.ErrorIs(t, svc.Delete(ctx, h.ID), ErrHistoryNotFound)
}

package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"video-sharing/search"
)

// Hand-written: these queries take their WHERE/ORDER/LIMIT tail from a
// search.Spec, which sqlc cannot express.

const videoSelect = `SELECT v.id, v.title, v.description, v.duration, v.video_path, v.thumbnail_path, v.views,
       v.uploaded_at, v.uploaded_by, u.username, u.icon_path,
       ARRAY(SELECT c.name FROM video_categories vc JOIN categories c ON c.id = vc.category_id
             WHERE vc.video_id = v.id ORDER BY c.name)::text[] AS categories
FROM videos v
JOIN users u ON u.id = v.uploaded_by`

const channelSelect = `SELECT u.id, u.first_name, u.last_name, u.username, u.icon_path,
       (SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.id) AS subscribers
FROM users u`

const listWatchedVideos = videoSelect + `
JOIN watched_videos w ON w.video_id = v.id
WHERE w.user_id = $1
ORDER BY w.watched_at DESC
LIMIT $2 OFFSET $3`

// SearchVideos lists videos matching spec with their uploader and categories.
func (q *Queries) SearchVideos(ctx context.Context, spec search.Spec) ([]GetVideoRow, error) {
	tail, args := spec.SQL(1)
	rows, err := q.db.Query(ctx, videoSelect+"\n"+tail, args...)
	if err != nil {
		return nil, err
	}
	return collectVideos(rows)
}

// SearchUsers lists users matching spec with their subscriber count.
func (q *Queries) SearchUsers(ctx context.Context, spec search.Spec) ([]GetChannelRow, error) {
	tail, args := spec.SQL(1)
	rows, err := q.db.Query(ctx, channelSelect+"\n"+tail, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetChannelRow
	for rows.Next() {
		var i GetChannelRow
		if err := rows.Scan(
			&i.ID,
			&i.FirstName,
			&i.LastName,
			&i.Username,
			&i.IconPath,
			&i.Subscribers,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

// ListWatchedVideos lists the videos a user watched, most recent first.
func (q *Queries) ListWatchedVideos(ctx context.Context, userID uuid.UUID, page search.Page) ([]GetVideoRow, error) {
	rows, err := q.db.Query(ctx, listWatchedVideos, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return collectVideos(rows)
}

func collectVideos(rows pgx.Rows) ([]GetVideoRow, error) {
	defer rows.Close()
	var items []GetVideoRow
	for rows.Next() {
		var i GetVideoRow
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Description,
			&i.Duration,
			&i.VideoPath,
			&i.ThumbnailPath,
			&i.Views,
			&i.UploadedAt,
			&i.UploadedBy,
			&i.Username,
			&i.IconPath,
			&i.Categories,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

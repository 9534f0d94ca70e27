package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/ValievMarat/advert-service/models"
)

const (
	createUser = `INSERT INTO users (username, password_hash, mail)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, password_hash, mail, created_at;`

	getUserByID = `SELECT user_id, username, password_hash, mail, created_at
    FROM users
    WHERE user_id = $1;`

	getUserByUsername = `SELECT user_id, username, password_hash, mail, created_at
    FROM users
    WHERE username = $1;`

	deleteUser = `DELETE FROM users
    WHERE user_id = $1;`

	createAdvert = `INSERT INTO adverts (caption, description, owner_id)
    VALUES ($1, $2, $3)
    RETURNING advert_id, caption, description, owner_id, created_at;`

	getAdvertByID = `SELECT advert_id, caption, description, owner_id, created_at
    FROM adverts
    WHERE advert_id = $1;`

	updateAdvert = `UPDATE adverts
    SET caption = $1, description = $2
    WHERE advert_id = $3;`

	deleteAdvert = `DELETE FROM adverts
    WHERE advert_id = $1;`
)

// buildUserUpdateQuery builds the partial UPDATE for PATCH /users/{id}/.
// Only the allow-listed fields present in update produce SET clauses;
// the client can never inject arbitrary column names. Returns an error when
// update carries no fields at all (squirrel refuses an UPDATE without SET).
func buildUserUpdateQuery(userID int64, update models.UserUpdate) (string, []any, error) {
	builder := sq.Update(models.User{}.TableName()).PlaceholderFormat(sq.Dollar)

	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
	}
	if update.Password != nil {
		// already hashed by the service layer
		builder = builder.Set("password_hash", *update.Password)
	}
	if update.Mail != nil {
		builder = builder.Set("mail", *update.Mail)
	}

	return builder.Where(sq.Eq{"user_id": userID}).ToSql()
}

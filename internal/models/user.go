package models

// User matches the admin account documents in MongoDB.
type User struct {
	Email    string `bson:"email"`
	Name     string `bson:"name"`
	Password string `bson:"password"`
	Role     string `bson:"role"`
	Status   string `bson:"status"`
}

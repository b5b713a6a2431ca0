package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                  // 사용자 ID
	Username  *string   `gorm:"size:50;uniqueIndex" json:"username"`                   // 사용자명 (선택)
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`            // 이메일
	Password  Password  `gorm:"column:password_hash;size:128" json:"-"`                // 비밀번호 해시 (구글 계정은 없음)
	GoogleID  *string   `gorm:"column:google_id;size:64;uniqueIndex" json:"google_id"` // 구글 계정 ID
	CreatedAt time.Time `json:"created_at"`                                            // 생성 시각
	UpdatedAt time.Time `json:"updated_at"`                                            // 수정 시각

	Reviews   []Review   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`   // 작성한 리뷰
	Favorites []Favorite `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"` // 즐겨찾기
}

func (User) TableName() string {
	return "users"
}

// NewUser builds a user with a validated email and optional username. The
// password is left unset.
func NewUser(email string, username *string) (*User, error) {
	u := &User{}
	if err := u.SetEmail(email); err != nil {
		return nil, err
	}
	if err := u.SetUsername(username); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) SetEmail(email string) error {
	normalized, err := validateEmail(email)
	if err != nil {
		return err
	}
	u.Email = normalized
	return nil
}

func (u *User) SetUsername(username *string) error {
	normalized, err := validateUsername(username)
	if err != nil {
		return err
	}
	u.Username = normalized
	return nil
}

func (u *User) SetPassword(plaintext string) error {
	return u.Password.Set(plaintext)
}

func (u *User) SetGoogleID(googleID string) {
	u.GoogleID = &googleID
}

// Authenticate reports whether plaintext matches the stored password. Users
// without a password never authenticate this way.
func (u *User) Authenticate(plaintext string) bool {
	return u.Password.Matches(plaintext)
}

func (u *User) HasPassword() bool {
	return u.Password.IsSet()
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	if _, err := validateEmail(u.Email); err != nil {
		return err
	}
	_, err := validateUsername(u.Username)
	return err
}

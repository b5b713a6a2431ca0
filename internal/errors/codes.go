package errors

// 에러 코드 상수 정의
// 프론트엔드에서 에러 코드로 메시지를 매핑할 수 있도록 표준화된 코드 사용

// 인증 관련 (AUTH_*)
const (
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // 로그인 필요
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // 아이디/이메일 또는 비밀번호 불일치
	AuthSessionExpired     = "AUTH_SESSION_EXPIRED"     // 세션이 더 이상 유효하지 않음
	AuthEmailNotVerified   = "AUTH_EMAIL_NOT_VERIFIED"  // 구글 이메일 미인증
	AuthInvalidOAuthToken  = "AUTH_INVALID_OAUTH_TOKEN" // 구글 액세스 토큰 거부
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"        // 이메일 중복
	AuthUsernameExists     = "AUTH_USERNAME_EXISTS"     // 사용자명 중복
	AuthPasswordMismatch   = "AUTH_PASSWORD_MISMATCH"   // 현재 비밀번호 불일치
)

// 권한 관련 (AUTHZ_*)
const (
	AuthzForbidden = "AUTHZ_FORBIDDEN" // 다른 사용자의 리소스 접근
)

// 입력 검증 (VALIDATION_*)
const (
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // 잘못된 입력값
	ValidationRequired     = "VALIDATION_REQUIRED"      // 필수 항목 누락
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // 잘못된 ID 형식
)

// 리소스 (RESOURCE_*)
const (
	ResourceNotFound      = "RESOURCE_NOT_FOUND"      // 리소스 없음
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS" // 이미 존재
	ResourceConstraint    = "RESOURCE_CONSTRAINT"     // 참조 무결성 위반
)

// 도메인별
const (
	RestaurantNotFound    = "RESTAURANT_NOT_FOUND"
	MenuNotFound          = "MENU_NOT_FOUND"
	DishNotFound          = "DISH_NOT_FOUND"
	DishAlreadyOnMenu     = "DISH_ALREADY_ON_MENU"
	ReviewNotFound        = "REVIEW_NOT_FOUND"
	FavoriteNotFound      = "FAVORITE_NOT_FOUND"
	FavoriteAlreadyExists = "FAVORITE_ALREADY_EXISTS"
	UserNotFound          = "USER_NOT_FOUND"
)

// 업로드 (UPLOAD_*)
const (
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadFailed          = "UPLOAD_FAILED"
)

// 서버 (INTERNAL_*)
const (
	InternalServerError = "INTERNAL_SERVER_ERROR"
	InternalExternalAPI = "INTERNAL_EXTERNAL_API" // 외부 서비스(구글) 호출 실패
)

package domain

// QuestionOption is one selectable answer for a question.
type QuestionOption struct {
	ID   string `json:"id"` // single-letter code: "a".."e"
	Text string `json:"text"`
}

// QuizQuestion models an MCQ question with exactly one correct option.
// Questions are loaded once from the catalog and never mutated.
type QuizQuestion struct {
	ID              int              `json:"id"`
	Text            string           `json:"text"`
	Options         []QuestionOption `json:"options"`
	CorrectAnswerID string           `json:"correctAnswerId"`
}

// Catalog is the fixed, ordered set of quiz questions.
type Catalog struct {
	ID        string         `json:"id"`
	Questions []QuizQuestion `json:"questions"`
}

// StudentAnswer records which option a student picked for one question.
// SelectedOptionID is nil when the question was left unanswered.
type StudentAnswer struct {
	QuestionID       int     `json:"questionId"`
	SelectedOptionID *string `json:"selectedOptionId"`
}

// StudentInfo is the identification form a student fills before the quiz.
type StudentInfo struct {
	Name      string `json:"name"`
	School    string `json:"school"`
	ClassName string `json:"className"`
}

// Submission is one completed, scored quiz attempt. Submissions are
// immutable and append-only: the store exposes no update or delete.
// Field names match the persisted JSON blob exactly.
type Submission struct {
	ID             string          `json:"id"`
	StudentName    string          `json:"studentName"`
	School         string          `json:"school"`
	ClassName      string          `json:"className"`
	Score          int             `json:"score"`
	TotalQuestions int             `json:"totalQuestions"`
	Answers        []StudentAnswer `json:"answers"`
	Timestamp      int64           `json:"timestamp"` // ms since epoch
}

// FilterAll is the wildcard value matching every school or class.
const FilterAll = "all"

// Filter selects a subset of submissions by school and class.
// Either field may be FilterAll.
type Filter struct {
	School    string `json:"school"`
	ClassName string `json:"className"`
}

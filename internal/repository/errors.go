package repository

import "errors"

// ErrDuplicateAnswer is returned by AnswerRepository.Record when an answer
// already exists for the (session, question) pair. The unique constraint in
// the store is the backstop for concurrent submissions.
var ErrDuplicateAnswer = errors.New("answer already recorded for this session and question")

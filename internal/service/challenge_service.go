package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"spellingmaster/internal/config"
	"spellingmaster/internal/content"
	"spellingmaster/internal/models"
	"spellingmaster/internal/repository"
)

// Phase is the current stage of a challenge run.
type Phase string

const (
	PhaseQuiz     Phase = "quiz"
	PhaseResults  Phase = "results"
	PhaseLearning Phase = "learning"
	PhaseRetest   Phase = "retest"
	PhaseComplete Phase = "complete"
)

// Learning sub-steps: study shows the item with its memory aid, recall asks
// the learner to reproduce it before moving on.
const (
	StepStudy  = "study"
	StepRecall = "recall"
)

var (
	ErrRunNotFound = errors.New("challenge run not found")
	ErrWrongPhase  = errors.New("operation not valid in current phase")
	ErrNoItems     = errors.New("no items available for this round")
)

// QuizItem is one question in a run. Answer is the accepted response and is
// never sent to the client.
type QuizItem struct {
	Identifier string
	Category   models.Category
	Prompt     string // fill-the-gap sentence for homophones, empty for words
	Hint       string
	Choices    []string
	Answer     string
}

// ItemSource builds quiz items from the content pool. Swappable so tests can
// control exactly which items a run contains.
type ItemSource interface {
	SpellingItems(cohort models.Cohort, n int, weight content.WeightFunc) []QuizItem
	HomophoneItems(n int, weight content.WeightFunc) []QuizItem
	// RetestItem builds a fresh instance of an item, preferring prompts not
	// in usedPrompts so the retest is not a memory test of the quiz.
	RetestItem(item QuizItem, usedPrompts []string) QuizItem
}

// missedEntry tracks one quiz miss through the learning and retest phases.
type missedEntry struct {
	item     QuizItem
	failures int // retest failures so far
	cleared  bool
	released bool // failed past the relearn cap, dropped from the round
}

type run struct {
	token     string
	sessionID int64
	kind      models.SessionType
	cohort    models.Cohort

	phase Phase
	// epoch increments on every phase change; the results timer captures it
	// and becomes a no-op if the run has moved on.
	epoch int

	items     []QuizItem
	index     int
	attempted int
	correct   int

	missed      []*missedEntry
	learnPos    int
	learnStep   string
	learnReturn bool // true when a single relearn should return to retest
	retestPos   int
	retestItem  *QuizItem
	usedPrompts []string

	newAchievements []models.AchievementDefinition
	newRewards      []models.RewardGrant

	lastActive time.Time
	timer      *time.Timer
}

// ChallengeService drives the quiz/learn/retest loop. Runs live in memory
// keyed by an opaque token; all persistent effects go through the progress,
// session, achievement and reward services.
type ChallengeService struct {
	mu   sync.Mutex
	runs map[string]*run

	source       ItemSource
	progress     *ProgressService
	achievements *AchievementService
	rewards      *RewardService
	sessions     *repository.SessionRepository

	quizSize          int
	homophoneQuizSize int
	resultsDelay      time.Duration
	relearnCap        int
	runTTL            time.Duration
	now               func() time.Time
}

// NewChallengeService creates a challenge service with the default content-
// backed item source.
func NewChallengeService(
	cfg *config.Config,
	progress *ProgressService,
	achievements *AchievementService,
	rewards *RewardService,
	sessions *repository.SessionRepository,
) *ChallengeService {
	return &ChallengeService{
		runs:              make(map[string]*run),
		source:            contentSource{},
		progress:          progress,
		achievements:      achievements,
		rewards:           rewards,
		sessions:          sessions,
		quizSize:          cfg.QuizSize,
		homophoneQuizSize: cfg.HomophoneQuizSize,
		resultsDelay:      cfg.ResultsDelay,
		relearnCap:        cfg.RelearnCap,
		runTTL:            cfg.RunTTL,
		now:               time.Now,
	}
}

// Start opens a new run: picks the round's items weighted toward struggling
// ones, opens a practice session and returns the first quiz question.
func (s *ChallengeService) Start(kind models.SessionType, cohort models.Cohort) (*RunState, error) {
	weight, err := s.progress.WeightsFor(categoryFor(kind), cohort)
	if err != nil {
		return nil, fmt.Errorf("failed to load selection weights: %w", err)
	}

	var items []QuizItem
	if kind == models.SessionHomophone {
		items = s.source.HomophoneItems(s.homophoneQuizSize, weight)
	} else {
		items = s.source.SpellingItems(cohort, s.quizSize, weight)
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	session, err := s.sessions.Create(kind, cohort)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	r := &run{
		token:      uuid.NewString(),
		sessionID:  session.ID,
		kind:       kind,
		cohort:     cohort,
		phase:      PhaseQuiz,
		items:      items,
		lastActive: s.now(),
	}
	for _, item := range items {
		if item.Prompt != "" {
			r.usedPrompts = append(r.usedPrompts, item.Prompt)
		}
	}

	s.mu.Lock()
	s.runs[r.token] = r
	s.mu.Unlock()

	return s.stateOf(r), nil
}

// State returns the current view of a run.
func (s *ChallengeService) State(token string) (*RunState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.runs[token]
	if !ok {
		return nil, ErrRunNotFound
	}
	r.lastActive = s.now()
	return s.stateOf(r), nil
}

// AnswerResult reports the outcome of one submitted answer.
type AnswerResult struct {
	Correct       bool      `json:"correct"`
	CorrectAnswer string    `json:"correctAnswer,omitempty"`
	State         *RunState `json:"state"`
}

// SubmitQuizAnswer scores the current quiz question, records the attempt and
// advances the run. Finishing with everything correct completes the round
// immediately; any misses park the run on the results screen, which advances
// to the learning phase on its own after a short pause.
func (s *ChallengeService) SubmitQuizAnswer(token, answer string) (*AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.runs[token]
	if !ok {
		return nil, ErrRunNotFound
	}
	if r.phase != PhaseQuiz {
		return nil, ErrWrongPhase
	}
	r.lastActive = s.now()

	item := r.items[r.index]
	correct := answersMatch(answer, item.Answer)

	if err := s.recordAttempt(r, item, correct); err != nil {
		return nil, err
	}
	r.attempted++
	if correct {
		r.correct++
	} else {
		r.missed = append(r.missed, &missedEntry{item: item})
	}
	if err := s.sessions.UpdateCounts(r.sessionID, r.attempted, r.correct); err != nil {
		return nil, err
	}

	r.index++
	if r.index >= len(r.items) {
		if len(r.missed) == 0 {
			s.completeRun(r, true)
		} else {
			s.enterResults(r)
		}
	}

	return &AnswerResult{Correct: correct, CorrectAnswer: item.Answer, State: s.stateOf(r)}, nil
}

// AdvanceLearning moves through the learning phase. On the study step the
// answer is ignored and the run moves to recall. On recall, a correct answer
// advances to the next missed item (or on to the retest); an incorrect one
// returns to study of the same item. Learning answers are practice only and
// never touch the progress counters.
func (s *ChallengeService) AdvanceLearning(token, answer string) (*AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.runs[token]
	if !ok {
		return nil, ErrRunNotFound
	}
	if r.phase != PhaseLearning {
		return nil, ErrWrongPhase
	}
	r.lastActive = s.now()

	entry := r.missed[r.learnPos]
	if r.learnStep == StepStudy {
		r.learnStep = StepRecall
		return &AnswerResult{State: s.stateOf(r)}, nil
	}

	correct := answersMatch(answer, entry.item.Answer)
	if !correct {
		r.learnStep = StepStudy
		return &AnswerResult{Correct: false, CorrectAnswer: entry.item.Answer, State: s.stateOf(r)}, nil
	}

	if r.learnReturn {
		r.learnReturn = false
		s.enterRetest(r)
		return &AnswerResult{Correct: true, CorrectAnswer: entry.item.Answer, State: s.stateOf(r)}, nil
	}

	r.learnPos = nextActive(r.missed, r.learnPos+1)
	if r.learnPos < 0 {
		r.retestPos = nextActive(r.missed, 0)
		s.enterRetest(r)
	} else {
		r.learnStep = StepStudy
	}
	return &AnswerResult{Correct: true, CorrectAnswer: entry.item.Answer, State: s.stateOf(r)}, nil
}

// SubmitRetestAnswer scores a retest question. A correct answer clears the
// item for the round. An incorrect one sends the item back through a single
// relearn, up to the relearn cap, after which the item is released so a
// stubborn word cannot trap the learner in the round forever.
func (s *ChallengeService) SubmitRetestAnswer(token, answer string) (*AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.runs[token]
	if !ok {
		return nil, ErrRunNotFound
	}
	if r.phase != PhaseRetest {
		return nil, ErrWrongPhase
	}
	r.lastActive = s.now()

	entry := r.missed[r.retestPos]
	item := entry.item
	if r.retestItem != nil {
		item = *r.retestItem
	}
	correct := answersMatch(answer, item.Answer)

	if err := s.recordAttempt(r, item, correct); err != nil {
		return nil, err
	}
	r.attempted++
	if correct {
		r.correct++
	}
	if err := s.sessions.UpdateCounts(r.sessionID, r.attempted, r.correct); err != nil {
		return nil, err
	}

	if correct {
		entry.cleared = true
	} else {
		entry.failures++
		if entry.failures >= s.relearnCap {
			entry.released = true
		} else {
			// one more pass through study/recall, then straight back here
			r.phase = PhaseLearning
			r.epoch++
			r.learnPos = r.retestPos
			r.learnStep = StepStudy
			r.learnReturn = true
			r.retestItem = nil
			return &AnswerResult{Correct: false, CorrectAnswer: item.Answer, State: s.stateOf(r)}, nil
		}
	}

	r.retestPos = nextActive(r.missed, r.retestPos+1)
	if r.retestPos < 0 {
		r.retestItem = nil
		s.completeRun(r, false)
	} else {
		s.prepareRetestItem(r)
	}
	return &AnswerResult{Correct: correct, CorrectAnswer: item.Answer, State: s.stateOf(r)}, nil
}

// Exit abandons a run. The session stays incomplete and out of the
// completed-round aggregates; recorded attempts are kept.
func (s *ChallengeService) Exit(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.runs[token]
	if !ok {
		return ErrRunNotFound
	}
	if r.timer != nil {
		r.timer.Stop()
	}
	delete(s.runs, token)
	return nil
}

// Reap removes runs idle past the TTL. Meant to be called periodically from
// a background goroutine.
func (s *ChallengeService) Reap() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.runTTL)
	reaped := 0
	for token, r := range s.runs {
		if r.lastActive.Before(cutoff) {
			if r.timer != nil {
				r.timer.Stop()
			}
			delete(s.runs, token)
			reaped++
		}
	}
	return reaped
}

// ActiveRuns reports the number of live runs.
func (s *ChallengeService) ActiveRuns() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.runs)
}

// enterResults parks the run on the results screen and arms the auto-advance
// timer. Caller holds the lock.
func (s *ChallengeService) enterResults(r *run) {
	r.phase = PhaseResults
	r.epoch++
	epoch := r.epoch
	token := r.token
	r.timer = time.AfterFunc(s.resultsDelay, func() {
		s.enterLearning(token, epoch)
	})
}

// enterLearning moves a run from results into the learning phase. The epoch
// guard makes a timer fired after the run moved on (or was exited) a no-op.
func (s *ChallengeService) enterLearning(token string, epoch int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.runs[token]
	if !ok || r.phase != PhaseResults || r.epoch != epoch {
		return
	}
	r.phase = PhaseLearning
	r.epoch++
	r.learnPos = nextActive(r.missed, 0)
	r.learnStep = StepStudy
}

// enterRetest switches to the retest phase and prepares the first fresh
// item. Caller holds the lock.
func (s *ChallengeService) enterRetest(r *run) {
	r.phase = PhaseRetest
	r.epoch++
	if r.retestPos < 0 || r.retestPos >= len(r.missed) || !entryActive(r.missed[r.retestPos]) {
		r.retestPos = nextActive(r.missed, 0)
	}
	if r.retestPos < 0 {
		s.completeRun(r, false)
		return
	}
	s.prepareRetestItem(r)
}

func (s *ChallengeService) prepareRetestItem(r *run) {
	fresh := s.source.RetestItem(r.missed[r.retestPos].item, r.usedPrompts)
	r.retestItem = &fresh
	if fresh.Prompt != "" {
		r.usedPrompts = append(r.usedPrompts, fresh.Prompt)
	}
}

// completeRun closes the session and settles achievements. Caller holds the
// lock.
func (s *ChallengeService) completeRun(r *run, perfect bool) {
	r.phase = PhaseComplete
	r.epoch++
	if r.timer != nil {
		r.timer.Stop()
	}

	if err := s.sessions.Complete(r.sessionID); err != nil {
		log.Printf("Failed to complete session %d: %v", r.sessionID, err)
	}

	if perfect {
		def, err := s.achievements.UnlockSpecial(AchievementPerfectRound)
		if err != nil {
			log.Printf("Failed to unlock perfect round: %v", err)
		} else if def != nil {
			r.newAchievements = append(r.newAchievements, *def)
		}
	}

	newly, err := s.achievements.Evaluate()
	if err != nil {
		log.Printf("Achievement evaluation failed: %v", err)
	} else {
		r.newAchievements = append(r.newAchievements, newly...)
	}
}

// recordAttempt persists one attempt. A homophone answer counts twice: once
// against the set and once against the specific word the gap asked for.
// Caller holds the lock.
func (s *ChallengeService) recordAttempt(r *run, item QuizItem, correct bool) error {
	if err := s.recordOne(r, item.Identifier, item.Category, correct); err != nil {
		return err
	}
	if item.Category == models.CategoryHomophoneSet && item.Answer != "" {
		return s.recordOne(r, item.Answer, models.CategoryWord, correct)
	}
	return nil
}

// recordOne persists a single ledger attempt and grants the collectible when
// the attempt pushed the item into mastered.
func (s *ChallengeService) recordOne(r *run, identifier string, category models.Category, correct bool) error {
	result, err := s.progress.RecordAttempt(identifier, category, r.cohort, correct)
	if err != nil {
		return fmt.Errorf("failed to record attempt for %q: %w", identifier, err)
	}
	if !result.NewlyMastered() {
		return nil
	}

	grant, err := s.rewards.TryGrant(context.Background(), identifier, category, r.cohort)
	if err != nil {
		// the round must not fail because the artwork service is down
		log.Printf("Reward grant failed for %q: %v", identifier, err)
		return nil
	}
	if grant != nil {
		r.newRewards = append(r.newRewards, *grant)
	}
	return nil
}

func categoryFor(kind models.SessionType) models.Category {
	if kind == models.SessionHomophone {
		return models.CategoryHomophoneSet
	}
	return models.CategoryWord
}

func answersMatch(got, want string) bool {
	return strings.EqualFold(strings.TrimSpace(got), strings.TrimSpace(want))
}

func entryActive(e *missedEntry) bool {
	return !e.cleared && !e.released
}

// nextActive returns the index of the first entry at or after from that is
// still in play, or -1.
func nextActive(missed []*missedEntry, from int) int {
	for i := from; i < len(missed); i++ {
		if entryActive(missed[i]) {
			return i
		}
	}
	return -1
}

// contentSource is the production ItemSource backed by the content package.
type contentSource struct{}

func (contentSource) SpellingItems(cohort models.Cohort, n int, weight content.WeightFunc) []QuizItem {
	words := content.PickWords(cohort, n, weight)
	items := make([]QuizItem, 0, len(words))
	for _, w := range words {
		items = append(items, QuizItem{
			Identifier: w,
			Category:   models.CategoryWord,
			Choices:    content.Choices(w, 3),
			Answer:     w,
		})
	}
	return items
}

func (contentSource) HomophoneItems(n int, weight content.WeightFunc) []QuizItem {
	questions := content.PickQuestions(n, weight)
	items := make([]QuizItem, 0, len(questions))
	for _, q := range questions {
		items = append(items, QuizItem{
			Identifier: q.SetID,
			Category:   models.CategoryHomophoneSet,
			Prompt:     q.Text,
			Hint:       q.Hint,
			Choices:    q.Choices,
			Answer:     q.Answer,
		})
	}
	return items
}

func (contentSource) RetestItem(item QuizItem, usedPrompts []string) QuizItem {
	if item.Category == models.CategoryWord {
		item.Choices = content.Choices(item.Answer, 3)
		return item
	}

	set, ok := content.SetByID(item.Identifier)
	if !ok {
		return item
	}
	used := make(map[string]bool, len(usedPrompts))
	for _, p := range usedPrompts {
		used[p] = true
	}

	sentence := set.Sentences[0]
	for _, candidate := range set.Sentences {
		if !used[candidate.Text] {
			sentence = candidate
			break
		}
	}

	fresh := item
	fresh.Prompt = sentence.Text
	fresh.Hint = sentence.Hint
	fresh.Answer = sentence.Answer
	fresh.Choices = set.Members()
	return fresh
}

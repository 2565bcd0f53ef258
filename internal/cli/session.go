package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/amc-tools/amc-answers/internal/exam"
	"github.com/amc-tools/amc-answers/internal/fetch"
	"github.com/amc-tools/amc-answers/internal/logger"
	"github.com/amc-tools/amc-answers/internal/wiki"
)

// app wires the collaborators for one CLI run.
type app struct {
	out     io.Writer
	prompt  *prompter
	client  *fetch.Client
	extract *wiki.Extractor
}

// runInteractive drives the prompt loop: year → test type → answers →
// optional solutions, repeated until the user stops.
func (a *app) runInteractive() error {
	printHeader(a.out, "AMC/AIME/AJHSME Answer Key Lookup")
	printRule(a.out)

	for {
		year, err := a.prompt.intInRange("Enter the year of the test: ",
			exam.MinYear, time.Now().Year(), false,
			"Tests started in 1950, please enter a later year.",
			"Do not enter a year in the future.")
		if err != nil {
			return err
		}

		testType, err := a.promptTestType(year)
		if err != nil {
			return err
		}

		answers := a.showAnswers(year, testType)
		if len(answers) > 0 {
			yes, err := a.prompt.yes("Do you want to see the solutions to the answers? (yes/no): ")
			if err != nil {
				return err
			}
			if yes {
				if err := a.solutionLoop(testType.AnswerKeyURL(year), len(answers)); err != nil {
					return err
				}
			}
		}

		again, err := a.prompt.another("Do you want to look up another test? (yes/no): ")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
		printRule(a.out)
	}
}

// promptTestType lists the tests offered in a year and prompts until the user
// picks one of them.
func (a *app) promptTestType(year int) (exam.Type, error) {
	available := exam.AvailableFor(year)
	printTestTypes(a.out, year, available)

	for {
		input, err := a.prompt.line("Enter the test type: ")
		if err != nil {
			return exam.Type{}, err
		}
		if input == "" {
			printError(a.out, "Test type cannot be empty. Please try again.")
			continue
		}

		testType, ok := exam.Lookup(input)
		if !ok || !testType.AvailableIn(year) {
			printError(a.out, "Invalid test type. Please choose from the available options.")
			continue
		}

		printSuccess(a.out, fmt.Sprintf("Test type '%s' is valid for the year %d.", testType.Code, year))
		return testType, nil
	}
}

// showAnswers fetches and prints the answer key. Returns nil when the page
// could not be fetched or its structure was not recognized; the session
// continues either way.
func (a *app) showAnswers(year int, testType exam.Type) []string {
	url := testType.AnswerKeyURL(year)
	printInfo(a.out, fmt.Sprintf("Fetching data from: %s", url))

	doc, err := a.client.Fetch(url)
	if err != nil {
		printError(a.out, fmt.Sprintf("Error fetching the webpage: %v", err))
		printError(a.out, "Failed to retrieve answers. Please check if the test exists on the AoPS wiki.")
		return nil
	}

	answers, err := a.extract.Answers(doc)
	if err != nil {
		if errors.Is(err, wiki.ErrAnswersNotFound) {
			printError(a.out, "No answers found with the expected format. The page structure might have changed.")
		} else {
			printError(a.out, fmt.Sprintf("Error extracting answers: %v", err))
		}
		return nil
	}

	logger.Info("Fetched answer key", logger.Fields{"url": url, "answers": len(answers)})
	printSuccess(a.out, "Found answer elements on the page.")
	printAnswers(a.out, fmt.Sprintf("%d %s", year, testType.Code), answers)
	return answers
}

// solutionLoop prompts for question numbers, lists each question's solution
// sections and prints the chosen one. A fetch failure reports and re-prompts;
// 0 exits the loop.
func (a *app) solutionLoop(answerKeyURL string, maxQuestion int) error {
	printInfo(a.out, fmt.Sprintf("Ready to fetch solutions for questions 1 to %d.", maxQuestion))

	for {
		question, err := a.prompt.intInRange("Enter the question number (or 0 to exit): ",
			1, maxQuestion, true, "", "")
		if err != nil {
			return err
		}
		if question == 0 {
			printInfo(a.out, "Exiting solution finder.")
			return nil
		}

		printInfo(a.out, fmt.Sprintf("Fetching solution page for question %d...", question))
		doc, err := a.client.Fetch(exam.ProblemURL(answerKeyURL, question))
		if err != nil {
			printError(a.out, fmt.Sprintf("Network error while fetching the page: %v", err))
			continue
		}

		sections := a.extract.Sections(doc)
		if len(sections) == 0 {
			printError(a.out, "No solution sections found for this question.")
			continue
		}

		printInfo(a.out, "Available solution sections:")
		printSections(a.out, sections)

		choice, err := a.prompt.intInRange("Enter section number to view (or 0 to go back): ",
			1, len(sections), true, "", "")
		if err != nil {
			return err
		}
		if choice == 0 {
			continue
		}

		fragments := a.extract.Section(doc, choice-1)
		if !wiki.HasContent(fragments) {
			printError(a.out, "No readable solution content found in the selected section.")
			continue
		}
		printSuccess(a.out, "Solution:")
		fmt.Fprintln(a.out, formatSolution(fragments))
	}
}

// runOnce performs a single scripted lookup from flags and returns any
// failure as an error instead of re-prompting.
func (a *app) runOnce(year int, testCode string, question, section int) error {
	if year == 0 || testCode == "" {
		return fmt.Errorf("--year and --test must be used together")
	}

	testType, ok := exam.Lookup(testCode)
	if !ok {
		return fmt.Errorf("unknown test type: %s", testCode)
	}
	if !testType.AvailableIn(year) {
		return fmt.Errorf("the %s was not offered in %d", testType.Description, year)
	}

	url := testType.AnswerKeyURL(year)
	doc, err := a.client.Fetch(url)
	if err != nil {
		return fmt.Errorf("fetching answer key: %w", err)
	}

	answers, err := a.extract.Answers(doc)
	if err != nil {
		return fmt.Errorf("extracting answers from %s: %w", url, err)
	}
	printAnswers(a.out, fmt.Sprintf("%d %s", year, testType.Code), answers)

	if question == 0 {
		return nil
	}
	if question < 0 || question > len(answers) {
		return fmt.Errorf("question %d out of range: this test has %d questions", question, len(answers))
	}

	problemDoc, err := a.client.Fetch(exam.ProblemURL(url, question))
	if err != nil {
		return fmt.Errorf("fetching problem page: %w", err)
	}

	sections := a.extract.Sections(problemDoc)
	if len(sections) == 0 {
		return fmt.Errorf("no solution sections found for question %d", question)
	}

	if section == 0 {
		printInfo(a.out, fmt.Sprintf("Solution sections for question %d:", question))
		printSections(a.out, sections)
		return nil
	}
	if section < 0 || section > len(sections) {
		return fmt.Errorf("section %d out of range: question %d has %d sections", section, question, len(sections))
	}

	fragments := a.extract.Section(problemDoc, section-1)
	if !wiki.HasContent(fragments) {
		return fmt.Errorf("no readable content in section %d of question %d", section, question)
	}
	printSuccess(a.out, fmt.Sprintf("Question %d, %s:", question, sections[section-1]))
	fmt.Fprintln(a.out, formatSolution(fragments))
	return nil
}

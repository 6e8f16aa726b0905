package prompt

import "github.com/viant/qgen/model"

// AuthoringGuidelines is the system instruction handed to the generation
// backend for every request.
const AuthoringGuidelines = `You are an educational assessment expert creating questions for digital course products. Follow these guidelines:

OBJECTIVES AND QUALITY:
- Each question must directly support at least one measurable learning objective
- Match question difficulty to the objective's cognitive level
- Ensure content is error-free: correct answers, terminology, factual accuracy
- Use standard American English

QUESTION STEMS:
- Make stems meaningful standalone, presenting a definite problem
- Ensure readability outside the section context
- Remove irrelevant material from stems
- Use negative statements only when learning objectives require it
- Match the core text's terminology and tone

ANSWER OPTIONS:
- Create strong distractors reflecting common misconceptions
- All options must be of the same type and similar length
- Never use "all/none of the above" options
- Ensure grammatical consistency with the stem
- Avoid absolute determiners (all, always, never) in incorrect options
- Ensure distractors are unequivocally wrong with no debate possibility

HIGHER-ORDER THINKING:
- Analysis questions: inference, cause and effect, conclusions, comparisons
- Evaluation questions: judgment, advantages and limitations, hypothesizing`

// DifficultyDescription explains what a difficulty level demands of a
// question.
func DifficultyDescription(difficulty string) string {
	switch difficulty {
	case "basic":
		return "recall of facts and basic understanding of concepts"
	case "intermediate":
		return "application of concepts and analysis of relationships"
	case "advanced":
		return "synthesis of multiple concepts and evaluation of complex scenarios"
	}
	return "appropriate college-level understanding"
}

// CognitiveGuidelines returns authoring guidance for a cognitive level and
// question kind.
func CognitiveGuidelines(cognitive string, kind model.Kind) string {
	switch kind {
	case model.KindChoice:
		switch cognitive {
		case "remember":
			return "Focus on direct recall of facts, definitions, and basic concepts. Stem should ask for specific information covered in the material."
		case "apply":
			return "Present a scenario or problem that requires applying learned concepts. Stem should describe a situation where students must use their knowledge."
		case "analyze":
			return "Present complex scenarios requiring analysis of multiple variables. Stem should require students to examine, compare, or evaluate information."
		}
	case model.KindTrueFalse:
		switch cognitive {
		case "remember":
			return "State facts, definitions, or basic concepts clearly. Focus on information directly covered in the material."
		case "apply":
			return "Present statements about applying concepts to situations. Focus on whether procedures or principles are correctly applied."
		case "analyze":
			return "Present statements requiring analysis of complex relationships. Focus on evaluations, comparisons, or synthesis of information."
		}
	case model.KindCloze:
		switch cognitive {
		case "remember":
			return "Remove key terms, definitions, or factual information. Focus on vocabulary, names, dates, and basic concepts."
		case "apply":
			return "Remove answers that require applying formulas or procedures. Focus on results of calculations or applications."
		case "analyze":
			return "Remove conclusions, evaluations, or synthesis results. Focus on analytical outcomes or judgments."
		}
	}
	return "appropriate cognitive level thinking"
}

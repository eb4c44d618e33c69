package ai

import (
	"fmt"

	"smart-scholar/internal/input"
	"smart-scholar/internal/scholar"
)

// Part is one ordered element of a generation request: either inline file
// data (base64 + MIME) or plain text.
type Part struct {
	Text string
	Data string // base64 file payload
	MIME string
}

// GenerationRequest is the assembled multi-part request for one task.
// Part order is a convention the backend is tuned to: encoded file first,
// then raw text, then custom instructions (slides only), then the task
// instruction last.
type GenerationRequest struct {
	Parts       []Part
	Task        scholar.Task
	Language    scholar.Language
	Temperature float32
}

// BuildSummaryRequest assembles the SUMMARY request from the collected sources.
func BuildSummaryRequest(src input.Sources) GenerationRequest {
	req := GenerationRequest{Task: scholar.TaskSummary, Language: src.Language, Temperature: 0.3}
	if src.File != nil {
		req.Parts = append(req.Parts, Part{Data: src.File.Data, MIME: src.File.MIMEType})
	}
	if src.Text != "" {
		req.Parts = append(req.Parts, Part{Text: "Source content URL/Text: " + src.Text})
	}
	req.Parts = append(req.Parts, Part{Text: summaryPrompt(src.Language)})
	return req
}

// BuildVisualRequest assembles the VISUALIZE request for an existing summary.
func BuildVisualRequest(summaryText string, lang scholar.Language) GenerationRequest {
	return GenerationRequest{
		Task:        scholar.TaskVisualize,
		Language:    lang,
		Temperature: 0.2,
		Parts: []Part{
			{Text: summaryText},
			{Text: visualPrompt(lang)},
		},
	}
}

// BuildSlidesRequest assembles the SLIDES request from the collected sources.
func BuildSlidesRequest(src input.Sources) GenerationRequest {
	req := GenerationRequest{Task: scholar.TaskSlides, Language: src.Language, Temperature: 0.4}
	if src.File != nil {
		req.Parts = append(req.Parts, Part{Data: src.File.Data, MIME: src.File.MIMEType})
	}
	req.Parts = append(req.Parts, Part{Text: "Source Content: " + src.Text})
	req.Parts = append(req.Parts, Part{Text: "User Custom Instructions: " + src.Instructions})
	req.Parts = append(req.Parts, Part{Text: slidesPrompt(src.Language)})
	return req
}

func summaryPrompt(lang scholar.Language) string {
	langInstruction := "Language: Create the entire output in ENGLISH."
	termsInstruction := "If there are technical terms, provide a brief simple explanation in parentheses."
	if lang == scholar.LangIndonesian {
		langInstruction = "Bahasa: Buat seluruh output dalam BAHASA INDONESIA yang baku dan formal."
		termsInstruction = "Jika ada istilah asing/teknis, berikan penjelasan singkat dalam kurung."
	}
	return fmt.Sprintf(`You are an expert academic research assistant named "Smart Scholar".
Analyze the provided document or text.

Task:
1. Create a comprehensive summary of the content.
2. Format the output in clean Markdown.
3. BOLD important keywords and concepts using **asterisks**.
4. %s
5. Structure with clear headings (H2, H3).
6. Ensure the tone is professional yet accessible to a non-expert.
7. %s`, termsInstruction, langInstruction)
}

func visualPrompt(lang scholar.Language) string {
	langInstruction := "Ensure all titles and labels are in English."
	if lang == scholar.LangIndonesian {
		langInstruction = "Ensure all titles and labels are in Bahasa Indonesia."
	}
	return fmt.Sprintf(`Analyze this summary and decide the best way to visualize the MAIN insight.
%s

Options:
1. If it describes a process, workflow, hierarchy, or timeline, return a "PROCESS" type.
2. If it contains comparable numerical data (statistics, growth, distribution), return a "CHART" type.
3. If neither is strong, return "NONE".

Output JSON adhering to the schema.`, langInstruction)
}

func slidesPrompt(lang scholar.Language) string {
	langInstruction := "Generate all slide content in English."
	if lang == scholar.LangIndonesian {
		langInstruction = "Generate all slide content in Bahasa Indonesia."
	}
	return fmt.Sprintf(`Act as a professional presentation designer. Create a slide deck based on the source content.
Follow the user's custom instructions for style/tone if provided.
%s

The output must be a valid JSON object representing the slides.
Structure:
- 5 to 8 slides.
- Slide 1 is always the Title Slide.
- Provide speaker notes for each slide.
- Choose a theme color hex code and font style suggestion.`, langInstruction)
}

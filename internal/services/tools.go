package services

import (
	"fmt"
	"strings"
)

// Tools is the generator registry. Every tool shares the same contract:
// structured input in, prompt to the gateway, JSON object out, typed
// fallback on malformed model output.
var Tools = map[string]*ToolSpec{
	"article": {
		Name:        "article",
		Description: "Long-form marketing article",
		Required:    []string{"topic"},
		Prompt: func(r *GenerateRequest) string {
			return fmt.Sprintf(`Write a marketing article about %q for the audience %q in a %s tone, in %s. `+
				`Return JSON: {"title": string, "introduction": string, "sections": [{"heading": string, "body": string}], "conclusion": string, "meta_description": string}. Use %d sections.`,
				r.Topic, r.Audience, orDefault(r.Tone, "professional"), r.language(), r.count(4))
		},
		Fallback: map[string]interface{}{
			"title":            "",
			"introduction":     "",
			"sections":         []interface{}{},
			"conclusion":       "",
			"meta_description": "",
		},
	},
	"hashtags": {
		Name:        "hashtags",
		Description: "Platform-specific hashtag set",
		Required:    []string{"topic"},
		Prompt: func(r *GenerateRequest) string {
			return fmt.Sprintf(`Generate %d hashtags about %q for %s. `+
				`Return JSON: {"hashtags": [string], "platform": string}.`,
				r.count(15), r.Topic, orDefault(r.Platform, "Instagram"))
		},
		Fallback: map[string]interface{}{"hashtags": []interface{}{}, "platform": ""},
	},
	"video-script": {
		Name:        "video-script",
		Description: "Short-form video script",
		Required:    []string{"topic"},
		Prompt: func(r *GenerateRequest) string {
			return fmt.Sprintf(`Write a %s video script about %q in a %s tone, in %s. `+
				`Return JSON: {"hook": string, "scenes": [{"visual": string, "voiceover": string, "duration_seconds": number}], "call_to_action": string}.`,
				orDefault(r.Platform, "TikTok"), r.Topic, orDefault(r.Tone, "energetic"), r.language())
		},
		Fallback: map[string]interface{}{"hook": "", "scenes": []interface{}{}, "call_to_action": ""},
	},
	"podcast-script": {
		Name:        "podcast-script",
		Description: "Podcast episode script",
		Required:    []string{"topic"},
		Prompt: func(r *GenerateRequest) string {
			return fmt.Sprintf(`Write a podcast episode script about %q for the audience %q, in %s. `+
				`Return JSON: {"episode_title": string, "intro": string, "segments": [{"title": string, "talking_points": [string]}], "outro": string}.`,
				r.Topic, r.Audience, r.language())
		},
		Fallback: map[string]interface{}{"episode_title": "", "intro": "", "segments": []interface{}{}, "outro": ""},
	},
	"seo-analysis": {
		Name:        "seo-analysis",
		Description: "SEO audit of a piece of content",
		Required:    []string{"content"},
		Prompt: func(r *GenerateRequest) string {
			return fmt.Sprintf(`Analyze this content for SEO, targeting keywords [%s]:\n%s\n`+
				`Return JSON: {"score": number, "strengths": [string], "issues": [string], "recommendations": [string], "suggested_keywords": [string]}.`,
				strings.Join(r.Keywords, ", "), r.Content)
		},
		Fallback: map[string]interface{}{
			"score": 0, "strengths": []interface{}{}, "issues": []interface{}{},
			"recommendations": []interface{}{}, "suggested_keywords": []interface{}{},
		},
	},
	"aeo-analysis": {
		Name:        "aeo-analysis",
		Description: "Answer-engine optimization analysis",
		Required:    []string{"content"},
		Prompt: func(r *GenerateRequest) string {
			return fmt.Sprintf(`Analyze this content for answer-engine optimization (AI assistants and featured snippets):\n%s\n`+
				`Return JSON: {"score": number, "answerable_questions": [string], "gaps": [string], "recommendations": [string]}.`,
				r.Content)
		},
		Fallback: map[string]interface{}{
			"score": 0, "answerable_questions": []interface{}{},
			"gaps": []interface{}{}, "recommendations": []interface{}{},
		},
	},
	"atomize": {
		Name:        "atomize",
		Description: "Split long content into channel-sized pieces",
		Required:    []string{"content"},
		Prompt: func(r *GenerateRequest) string {
			return fmt.Sprintf(`Atomize this content into %d short pieces for %s:\n%s\n`+
				`Return JSON: {"pieces": [{"platform": string, "format": string, "text": string}]}.`,
				r.count(5), orDefault(r.Platform, "social media"), r.Content)
		},
		Fallback: map[string]interface{}{"pieces": []interface{}{}},
	},
	"image-prompt": {
		Name:        "image-prompt",
		Description: "Image generation prompt for the brand",
		Required:    []string{"topic"},
		Prompt: func(r *GenerateRequest) string {
			return fmt.Sprintf(`Create %d image generation prompts for marketing visuals about %q in a %s style. `+
				`Return JSON: {"prompts": [{"prompt": string, "style": string, "aspect_ratio": string}]}.`,
				r.count(3), r.Topic, orDefault(r.Tone, "modern"))
		},
		Fallback: map[string]interface{}{"prompts": []interface{}{}},
	},
	"personas": {
		Name:        "personas",
		Description: "Buyer personas for the business",
		Required:    []string{"company", "industry"},
		Prompt: func(r *GenerateRequest) string {
			return fmt.Sprintf(`Create %d buyer personas for %q operating in the %s industry, in %s. `+
				`Return JSON: {"personas": [{"name": string, "age_range": string, "occupation": string, "goals": [string], "pain_points": [string], "channels": [string]}]}.`,
				r.count(3), r.Company, r.Industry, r.language())
		},
		Fallback: map[string]interface{}{"personas": []interface{}{}},
	},
	"canvas": {
		Name:        "canvas",
		Description: "Business model canvas",
		Required:    []string{"company", "product"},
		Prompt: func(r *GenerateRequest) string {
			return fmt.Sprintf(`Build a business model canvas for %q selling %q, in %s. `+
				`Return JSON with keys: value_proposition, customer_segments, channels, customer_relationships, revenue_streams, key_resources, key_activities, key_partners, cost_structure (each [string]).`,
				r.Company, r.Product, r.language())
		},
		Fallback: map[string]interface{}{
			"value_proposition": []interface{}{}, "customer_segments": []interface{}{},
			"channels": []interface{}{}, "customer_relationships": []interface{}{},
			"revenue_streams": []interface{}{}, "key_resources": []interface{}{},
			"key_activities": []interface{}{}, "key_partners": []interface{}{},
			"cost_structure": []interface{}{},
		},
	},
	"roadmap": {
		Name:        "roadmap",
		Description: "Product roadmap proposal",
		Required:    []string{"product"},
		Prompt: func(r *GenerateRequest) string {
			return fmt.Sprintf(`Propose a %d-quarter product roadmap for %q aimed at %q. `+
				`Return JSON: {"quarters": [{"quarter": string, "theme": string, "initiatives": [string]}]}.`,
				r.count(4), r.Product, r.Audience)
		},
		Fallback: map[string]interface{}{"quarters": []interface{}{}},
	},
	"content-strategy": {
		Name:        "content-strategy",
		Description: "Content strategy plan",
		Required:    []string{"company"},
		Prompt: func(r *GenerateRequest) string {
			return fmt.Sprintf(`Create a content strategy for %q (%s industry) targeting %q, in %s. `+
				`Return JSON: {"pillars": [{"name": string, "description": string, "formats": [string]}], "cadence": string, "kpis": [string]}.`,
				r.Company, orDefault(r.Industry, "general"), r.Audience, r.language())
		},
		Fallback: map[string]interface{}{"pillars": []interface{}{}, "cadence": "", "kpis": []interface{}{}},
	},
	"headlines": {
		Name:        "headlines",
		Description: "Headline variations",
		Required:    []string{"topic"},
		Prompt: func(r *GenerateRequest) string {
			return fmt.Sprintf(`Write %d headline variations about %q in a %s tone, in %s. `+
				`Return JSON: {"headlines": [string]}.`,
				r.count(10), r.Topic, orDefault(r.Tone, "punchy"), r.language())
		},
		Fallback: map[string]interface{}{"headlines": []interface{}{}},
	},
	"ad-copy": {
		Name:        "ad-copy",
		Description: "Paid ad copy variants",
		Required:    []string{"product"},
		Prompt: func(r *GenerateRequest) string {
			return fmt.Sprintf(`Write %d ad copy variants for %q on %s targeting %q. `+
				`Return JSON: {"ads": [{"headline": string, "primary_text": string, "call_to_action": string}]}.`,
				r.count(3), r.Product, orDefault(r.Platform, "Meta Ads"), r.Audience)
		},
		Fallback: map[string]interface{}{"ads": []interface{}{}},
	},
	"email-sequence": {
		Name:        "email-sequence",
		Description: "Email nurture sequence",
		Required:    []string{"product"},
		Prompt: func(r *GenerateRequest) string {
			return fmt.Sprintf(`Write a %d-email nurture sequence for %q targeting %q in a %s tone, in %s. `+
				`Return JSON: {"emails": [{"day": number, "subject": string, "body": string}]}.`,
				r.count(5), r.Product, r.Audience, orDefault(r.Tone, "friendly"), r.language())
		},
		Fallback: map[string]interface{}{"emails": []interface{}{}},
	},
	"social-calendar": {
		Name:        "social-calendar",
		Description: "Weekly social posting calendar",
		Required:    []string{"company"},
		Prompt: func(r *GenerateRequest) string {
			return fmt.Sprintf(`Create a %d-day social media calendar for %q on %s, in %s. `+
				`Return JSON: {"days": [{"day": number, "platform": string, "post_idea": string, "format": string}]}.`,
				r.count(7), r.Company, orDefault(r.Platform, "Instagram and LinkedIn"), r.language())
		},
		Fallback: map[string]interface{}{"days": []interface{}{}},
	},
	"keywords": {
		Name:        "keywords",
		Description: "Keyword research suggestions",
		Required:    []string{"topic"},
		Prompt: func(r *GenerateRequest) string {
			return fmt.Sprintf(`Suggest %d SEO keywords for %q in the %s industry. `+
				`Return JSON: {"keywords": [{"keyword": string, "intent": string, "difficulty": string}]}.`,
				r.count(20), r.Topic, orDefault(r.Industry, "general"))
		},
		Fallback: map[string]interface{}{"keywords": []interface{}{}},
	},
	"brand-voice": {
		Name:        "brand-voice",
		Description: "Brand voice guidelines",
		Required:    []string{"company"},
		Prompt: func(r *GenerateRequest) string {
			return fmt.Sprintf(`Define brand voice guidelines for %q (%s industry) targeting %q. `+
				`Return JSON: {"personality": [string], "tone": string, "vocabulary": {"use": [string], "avoid": [string]}, "examples": [string]}.`,
				r.Company, orDefault(r.Industry, "general"), r.Audience)
		},
		Fallback: map[string]interface{}{
			"personality": []interface{}{}, "tone": "",
			"vocabulary": map[string]interface{}{"use": []interface{}{}, "avoid": []interface{}{}},
			"examples":   []interface{}{},
		},
	},
	"competitor-analysis": {
		Name:        "competitor-analysis",
		Description: "Competitor landscape analysis",
		Required:    []string{"company", "industry"},
		Prompt: func(r *GenerateRequest) string {
			return fmt.Sprintf(`Analyze the competitive landscape for %q in the %s industry. `+
				`Return JSON: {"competitors": [{"name": string, "strengths": [string], "weaknesses": [string]}], "opportunities": [string], "positioning_advice": string}.`,
				r.Company, r.Industry)
		},
		Fallback: map[string]interface{}{
			"competitors": []interface{}{}, "opportunities": []interface{}{}, "positioning_advice": "",
		},
	},
	"landing-copy": {
		Name:        "landing-copy",
		Description: "Landing page copy",
		Required:    []string{"product"},
		Prompt: func(r *GenerateRequest) string {
			return fmt.Sprintf(`Write landing page copy for %q targeting %q in a %s tone, in %s. `+
				`Return JSON: {"hero_headline": string, "subheadline": string, "benefits": [{"title": string, "description": string}], "social_proof": string, "cta": string, "faq": [{"question": string, "answer": string}]}.`,
				r.Product, r.Audience, orDefault(r.Tone, "persuasive"), r.language())
		},
		Fallback: map[string]interface{}{
			"hero_headline": "", "subheadline": "", "benefits": []interface{}{},
			"social_proof": "", "cta": "", "faq": []interface{}{},
		},
	},
}

func orDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

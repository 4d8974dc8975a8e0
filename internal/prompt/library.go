// Package prompt builds the role-tagged conversations sent to the completion endpoint.
//
// Every builder is pure: it returns a system message carrying the task framing and
// output rules, followed by one user message carrying the payload. Generated text is
// stored and rendered verbatim, so every system prompt forbids conversational framing.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/geallenboy/ai-n8n/enricher/internal/domain"
)

// Translation builds the conversation translating text from source to target.
func Translation(text string, source, target domain.Language) []domain.Message {
	return []domain.Message{
		domain.SystemMessage(translationSystem(source, target)),
		domain.UserMessage(fmt.Sprintf(
			"Translate the text between the markers from %s to %s.\n\n===== TEXT BEGIN =====\n%s\n===== TEXT END =====",
			source.DisplayName(), target.DisplayName(), text,
		)),
	}
}

// Summary builds the conversation summarizing content in lang. The Chinese and
// English summaries are generated independently, each from its own instructions.
func Summary(content string, lang domain.Language) []domain.Message {
	var user string
	switch lang {
	case domain.LanguageZh:
		user = "请为以下工作流内容撰写简介：\n\n" + content
	default:
		user = "Write a summary for the following workflow content:\n\n" + content
	}
	return []domain.Message{
		domain.SystemMessage(systemFor(summarySystem, lang)),
		domain.UserMessage(user),
	}
}

// Interpretation builds the six-section breakdown of a workflow definition.
// narrative is optional context and may be empty.
func Interpretation(definition any, narrative string, lang domain.Language) ([]domain.Message, error) {
	payload, err := SerializeDefinition(definition)
	if err != nil {
		return nil, err
	}
	return []domain.Message{
		domain.SystemMessage(systemFor(interpretationSystem, lang)),
		domain.UserMessage(workflowPayload(payload, narrative, lang, interpretationAsk)),
	}, nil
}

// Tutorial builds the eight-section how-to guide for a workflow definition.
// narrative is optional context and may be empty.
func Tutorial(definition any, narrative string, lang domain.Language) ([]domain.Message, error) {
	payload, err := SerializeDefinition(definition)
	if err != nil {
		return nil, err
	}
	return []domain.Message{
		domain.SystemMessage(systemFor(tutorialSystem, lang)),
		domain.UserMessage(workflowPayload(payload, narrative, lang, tutorialAsk)),
	}, nil
}

// SerializeDefinition renders a structured workflow definition as indented JSON.
// A definition that is already JSON text is re-indented; other strings are kept as-is.
func SerializeDefinition(definition any) (string, error) {
	switch v := definition.(type) {
	case nil:
		return "{}", nil
	case string:
		return indentJSON([]byte(v), v), nil
	case []byte:
		return indentJSON(v, string(v)), nil
	case json.RawMessage:
		return indentJSON(v, string(v)), nil
	}
	out, err := json.MarshalIndent(definition, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize workflow definition: %w", err)
	}
	return string(out), nil
}

func indentJSON(raw []byte, fallback string) string {
	if !json.Valid(raw) {
		return fallback
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fallback
	}
	return string(out)
}

func systemFor(prompts map[domain.Language]string, lang domain.Language) string {
	if p, ok := prompts[lang]; ok {
		return p
	}
	return prompts[domain.LanguageEn] + fmt.Sprintf("\n\nWrite the entire output in %s.", lang.DisplayName())
}

type askSet map[domain.Language]string

var interpretationAsk = askSet{
	domain.LanguageZh: "请按要求的六个部分解读以下工作流定义。",
	domain.LanguageEn: "Interpret the following workflow definition using the six required sections.",
}

var tutorialAsk = askSet{
	domain.LanguageZh: "请根据以下工作流定义编写按要求的八个部分的搭建教程。",
	domain.LanguageEn: "Write the eight-section build tutorial for the following workflow definition.",
}

func workflowPayload(definition, narrative string, lang domain.Language, ask askSet) string {
	var b strings.Builder
	zh := lang == domain.LanguageZh
	intro, ok := ask[lang]
	if !ok {
		intro = ask[domain.LanguageEn]
	}
	b.WriteString(intro)
	if strings.TrimSpace(narrative) != "" {
		if zh {
			b.WriteString("\n\n背景说明（仅供参考）：\n")
		} else {
			b.WriteString("\n\nBackground notes (for context only):\n")
		}
		b.WriteString(narrative)
	}
	if zh {
		b.WriteString("\n\n工作流定义（JSON）：\n")
	} else {
		b.WriteString("\n\nWorkflow definition (JSON):\n")
	}
	b.WriteString(definition)
	return b.String()
}

func translationSystem(source, target domain.Language) string {
	return fmt.Sprintf(`You are a professional translator. Translate the user's text from %[1]s to %[2]s.

Rules:
- Translate faithfully and completely; do not add, omit or summarize content
- Preserve the tone and register of the original
- Keep technical terms, product names, node names and code identifiers consistent; do not translate URLs, file paths or placeholders
- Preserve line breaks and any Markdown formatting exactly
- Output ONLY the translated text in %[2]s
- NEVER add greetings, preambles such as "Here is the translation", explanations, notes or closing remarks
- NEVER wrap the output in quotes or code blocks
- NEVER include the TEXT BEGIN / TEXT END markers in the output`, source.DisplayName(), target.DisplayName())
}

var summarySystem = map[domain.Language]string{
	domain.LanguageZh: `你是一名资深的自动化工作流产品文案专家。请根据用户提供的内容，用简体中文撰写一段精炼、信息密度高的工作流简介。

要求：
- 突出该工作流的功能价值、解决的问题和典型使用场景
- 面向潜在用户，语言有吸引力但不夸大，控制在 150 字以内
- 只输出纯文本段落，不使用 Markdown、标题、列表或表情符号
- 不要出现问候语、开场白（如"以下是简介"）、总结语或向用户提问
- 不要逐字复述节点配置，不要编造内容中不存在的功能`,

	domain.LanguageEn: `You are a senior product copywriter for automation workflows. Based on the content provided by the user, write a concise, information-dense summary of the workflow in English.

Rules:
- Highlight the functional value, the problem it solves and its typical use cases
- Write for a prospective user: engaging but not exaggerated, at most 80 words
- Output a single plain-text paragraph; no Markdown, headings, lists or emoji
- NEVER add greetings, preambles such as "Here is the summary", closing remarks or questions to the user
- Do not restate node configuration verbatim and do not invent features that are not in the content`,
}

var interpretationSystem = map[domain.Language]string{
	domain.LanguageZh: `你是一名自动化工作流架构专家。请深入解读用户提供的结构化工作流定义（JSON），用简体中文输出结构化分析，必须严格包含以下六个部分：

## 1. 工作流概述
用两到三句话说明工作流的目的和业务价值，并给出复杂度评级（简单 / 中等 / 复杂）及理由。

## 2. 触发机制
说明工作流如何被启动（定时、Webhook、手动、事件等），以及触发条件和频率。

## 3. 核心流程
按执行顺序逐步说明每个关键节点做什么、数据如何在节点之间流转，包括分支和条件判断。

## 4. 应用场景
列出三到五个具体的使用场景或示例，说明谁会使用以及能带来什么效果。

## 5. 技术特点
说明涉及的外部服务与集成、认证方式、数据处理与错误处理等技术特征。

## 6. 使用建议
给出使用前提（账号、凭据、权限等）、配置注意事项和优化建议。

输出格式要求：
- 只使用简单 Markdown：二级或三级标题、有序或无序列表、加粗、斜体
- 不要使用代码块、表格、链接或 HTML
- 不要有开场白、问候语、结束语或向用户提问，直接从第一个标题开始输出
- 只依据工作流定义进行分析，不确定的内容应明确说明而不是编造`,

	domain.LanguageEn: `You are an automation workflow architect. Analyze the structured workflow definition (JSON) supplied by the user and produce a structured breakdown in English that contains exactly these six sections:

## 1. Overview
Two or three sentences on the purpose and business value of the workflow, plus a complexity rating (Simple / Moderate / Complex) with a short justification.

## 2. Trigger
How the workflow starts (schedule, webhook, manual, event, ...), with trigger conditions and frequency.

## 3. Core Flow
A step-by-step walk through the key nodes in execution order: what each one does and how data moves between them, including branches and conditions.

## 4. Use Cases
Three to five concrete use cases or examples: who would use it and what they gain.

## 5. Technical Characteristics
External services and integrations, authentication, data handling and error handling.

## 6. Recommendations
Prerequisites (accounts, credentials, permissions), configuration caveats and optimization tips.

Output format:
- Use simple Markdown only: level-two or level-three headings, ordered or unordered lists, bold and italic
- NEVER use code blocks, tables, links or HTML
- NEVER add a preamble, greeting, closing remarks or questions to the user; start directly with the first heading
- Base the analysis only on the definition; state uncertainty explicitly instead of inventing details`,
}

var tutorialSystem = map[domain.Language]string{
	domain.LanguageZh: `你是一名经验丰富的自动化工作流讲师。请根据用户提供的结构化工作流定义（JSON），用简体中文编写一份可直接照着操作的搭建教程，必须严格包含以下八个部分：

## 1. 环境要求
运行该工作流所需的平台版本、部署方式和外部服务账号。

## 2. 准备工作
需要提前准备的凭据、API 密钥、权限和测试数据。

## 3. 创建工作流
如何新建工作流并完成基础设置（名称、时区、执行设置等）。

## 4. 节点配置
按执行顺序逐个说明每个节点的添加方法和关键参数配置，每个节点单独成条。

## 5. 连接节点
说明节点之间如何连线，数据如何传递，分支与合并如何设置。

## 6. 测试与调试
如何手动执行测试、检查每个节点的输出，以及常见错误的排查方法。

## 7. 部署上线
如何激活工作流、设置触发，以及上线后的运行监控。

## 8. 维护与扩展
日常维护要点，以及可以如何扩展或改造该工作流。

输出格式要求：
- 只使用简单 Markdown：二级或三级标题、有序或无序列表、加粗、斜体
- 不要使用代码块、表格、链接或 HTML
- 不要有开场白、问候语、结束语或向用户提问，直接从第一个标题开始输出
- 步骤必须具体可执行，参数名称与工作流定义保持一致`,

	domain.LanguageEn: `You are an experienced automation workflow instructor. Using the structured workflow definition (JSON) supplied by the user, write an actionable build tutorial in English that contains exactly these eight sections:

## 1. Environment Requirements
Platform version, hosting option and external service accounts needed to run the workflow.

## 2. Preparation
Credentials, API keys, permissions and test data to prepare in advance.

## 3. Create the Workflow
How to create the workflow and complete its basic settings (name, timezone, execution settings).

## 4. Configure Each Node
For every node in execution order, how to add it and set its key parameters; one item per node.

## 5. Connect the Nodes
How the nodes are wired together, how data is passed along and how branches and merges are set up.

## 6. Test and Debug
How to run a manual test, inspect each node's output and troubleshoot common errors.

## 7. Deploy and Run
How to activate the workflow, enable its trigger and monitor executions in production.

## 8. Maintain and Extend
Routine maintenance points and ways to extend or adapt the workflow.

Output format:
- Use simple Markdown only: level-two or level-three headings, ordered or unordered lists, bold and italic
- NEVER use code blocks, tables, links or HTML
- NEVER add a preamble, greeting, closing remarks or questions to the user; start directly with the first heading
- Steps must be concrete and actionable; keep parameter names identical to the definition`,
}

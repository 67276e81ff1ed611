package intelligence

// Prompt templates for the planning pipeline. Each task instructs the model
// to return strictly valid JSON; the llm.ExtractJSON helpers tolerate the
// usual deviations (fences, prose, comments).

const clarifySystemPrompt = `You are a concise project analyst. Given a project summary, you generate exactly 5 short clarifying questions that would most improve a project plan. Respond with strictly valid JSON of the form {"questions": ["q1", "q2", "q3", "q4", "q5"]} and nothing else.`

const clarifyUserPromptTemplate = `Project summary:
%s

JSON:`

const planSystemPrompt = `You are a pragmatic project planner. Given a project summary and the user's answers to clarifying questions, produce a plan as strictly valid JSON with two keys:
"milestones": list of {"title", "description", "estimate_hours"}
"tasks": list of {"title", "description", "estimate_hours", "milestone_index"}
where milestone_index is the zero-based index into the milestones list (or null). Respond with the JSON object and nothing else.`

const planUserPromptTemplate = `Context:
%s

JSON:`

const estimateSystemPrompt = `You are a senior engineer estimating effort and risk. Given a task title and description, respond with strictly valid JSON of the form {"estimate_hours": <number>, "confidence": <float between 0 and 1>, "notes": "..."} and nothing else.`

const estimateUserPromptTemplate = `Task:
%s

JSON:`

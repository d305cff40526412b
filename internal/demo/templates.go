package demo

import "educatord/pkg/types"

// templates holds the canned educational text per content type. The {topic}
// placeholder is substituted with the topic extracted from the prompt.
// Completeness against types.AllContentTypes is asserted by tests.
var templates = map[types.ContentType]string{
	types.ContentExplanation: `Here's a detailed explanation of {topic}:

{topic} is an important concept that involves multiple aspects. Let me break it down:

1. Definition: {topic} refers to...
2. Key Components: The main elements include...
3. How it Works: The process involves...
4. Examples: Common examples include...
5. Importance: This is significant because...

Understanding {topic} is crucial for building foundational knowledge in this area.`,

	types.ContentSummary: `Summary of {topic}:

- Main Points:
  - Key aspect 1 of {topic}
  - Important feature 2
  - Critical element 3

- Context: {topic} is relevant in multiple fields

- Applications: Used in various practical scenarios

- Conclusion: {topic} represents a fundamental concept worth understanding thoroughly.`,

	types.ContentQuiz: `Quiz: {topic}

1. Multiple Choice:
What is the primary characteristic of {topic}?
a) Option A
b) Option B
c) Option C
d) Option D

2. True/False:
{topic} is always applicable in all contexts. (True/False)

3. Short Answer:
Explain one key benefit of understanding {topic}.

4. Fill in the blank:
The most important aspect of {topic} is ________.

Answer Key:
1. c) Option C
2. False
3. Sample answer: Understanding helps with...
4. [Key concept]`,

	types.ContentLesson: `Lesson Plan: {topic}

Objective: Students will understand the key concepts of {topic}

Materials Needed:
- Whiteboard/projector
- Handouts
- Interactive materials

Lesson Structure:

1. Introduction (10 minutes)
   - Hook: Engaging question about {topic}
   - Learning objectives

2. Main Content (25 minutes)
   - Explain core concepts
   - Provide examples
   - Interactive discussion

3. Practice Activity (10 minutes)
   - Hands-on exercise
   - Group work

4. Conclusion (5 minutes)
   - Recap key points
   - Preview next lesson

Assessment: Quiz on main concepts
Homework: Research additional examples`,

	types.ContentExample: `Examples of {topic}:

1. Real-world Example 1:
   In everyday life, {topic} can be seen when...
   This demonstrates how the concept applies practically.

2. Academic Example 2:
   In academic settings, {topic} is evident in...
   This shows the theoretical application.

3. Historical Example 3:
   Throughout history, {topic} has been important in...
   This provides historical context.

4. Modern Example 4:
   In today's world, {topic} is relevant in...
   This shows current relevance.

These examples illustrate the versatility and importance of understanding {topic}.`,

	types.ContentDefinition: `Definition: {topic}

{topic} is defined as...

Key Characteristics:
- Primary feature 1
- Important aspect 2
- Essential element 3

Context and Usage:
{topic} is commonly used in the context of... It's particularly relevant when discussing...

Related Terms:
- Synonym 1
- Related concept 2
- Associated term 3

Significance:
Understanding {topic} is important because it forms the foundation for... and helps in comprehending...`,
}

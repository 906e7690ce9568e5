package mail

import "strings"

// emailTemplate is the outer HTML document wrapped around the generated
// body. The feedback link query parameters (rating, id) are a compatibility
// surface for every email already sent; do not rename them.
const emailTemplate = `<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; }
        .content { max-width: 600px; margin: 0 auto; padding: 20px; }
        .feedback-section {
            background-color: #f4f4f4;
            padding: 20px;
            border-radius: 8px;
            margin-top: 30px;
            text-align: center;
        }
        .feedback-buttons {
            display: flex;
            justify-content: center;
            gap: 20px;
            margin-top: 15px;
        }
        .feedback-btn {
            display: inline-block;
            padding: 15px 25px;
            text-decoration: none;
            border-radius: 5px;
            font-size: 24px;
            transition: transform 0.2s;
        }
        .feedback-btn:hover { transform: scale(1.1); }
    </style>
</head>
<body>
    <div class="content">
        {content}

        <div class="feedback-section">
            <h3>How was this response?</h3>
            <div class="feedback-buttons">
                <a href="{feedback_url}?rating=positive&id={submission_id}" class="feedback-btn">😊</a>
                <a href="{feedback_url}?rating=neutral&id={submission_id}" class="feedback-btn">😐</a>
                <a href="{feedback_url}?rating=negative&id={submission_id}" class="feedback-btn">☹️</a>
            </div>
        </div>
    </div>
</body>
</html>`

// ComposeHTML embeds the generated body and the three feedback affordances
// into the outgoing document.
func ComposeHTML(bodyHTML, publicBaseURL, submissionID string) string {
	feedbackURL := strings.TrimRight(strings.TrimSpace(publicBaseURL), "/") + "/feedback"
	replacer := strings.NewReplacer(
		"{content}", bodyHTML,
		"{feedback_url}", feedbackURL,
		"{submission_id}", submissionID,
	)
	return replacer.Replace(emailTemplate)
}

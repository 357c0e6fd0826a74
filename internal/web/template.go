package web

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Smart AI Chatbot</title>
    <style>
        body { font-family: -apple-system, Arial, sans-serif; margin: 0; display: flex; min-height: 100vh; }
        .sidebar { width: 280px; background: #f5f5f7; padding: 20px; border-right: 1px solid #ddd; }
        .main { flex: 1; padding: 24px; max-width: 760px; }
        h1 { font-size: 1.5em; }
        h3 { margin-top: 24px; }
        input[type=text], input[type=password], textarea { width: 100%; box-sizing: border-box; margin: 4px 0 10px; padding: 8px; }
        button { padding: 8px 14px; cursor: pointer; }
        .danger { background: #d11a2a; color: white; border: none; }
        .banner { padding: 10px; border-radius: 6px; margin-bottom: 12px; }
        .banner.error { background: #fde8e8; color: #9b1c1c; }
        .banner.notice { background: #e8f5e9; color: #1b5e20; }
        .banner.provider-ok { background: #e8f5e9; color: #1b5e20; }
        .turn { border-bottom: 1px solid #eee; padding: 10px 0; }
        .turn .attachment { color: #666; font-style: italic; white-space: pre-wrap; }
        .turn .reply { white-space: pre-wrap; }
    </style>
</head>
<body>
<div class="sidebar">
    <h2>&#129302; AI Chatbot</h2>

    <h3>Model Provider</h3>
    <form method="post" action="/provider">
        {{range .Providers}}
        <label><input type="radio" name="provider" value="{{.}}" {{if eq . $.Provider}}checked{{end}}> {{.}}</label><br>
        {{end}}
        <button type="submit">Apply</button>
    </form>
    {{if .ProviderOK}}
    <div class="banner provider-ok">{{.Provider}} ready &#10003; ({{.Model}})</div>
    {{else}}
    <div class="banner error">{{.ProviderErr}}</div>
    {{end}}

    <hr>
    <h3>User Panel</h3>
    {{if .LoggedIn}}
    <p>Logged in as: <b>{{.Username}}</b></p>
    <form method="post" action="/logout"><button type="submit">Logout</button></form>
    {{else}}
    <h4>Register</h4>
    <form method="post" action="/register">
        <input type="text" name="username" placeholder="Username">
        <input type="password" name="password" placeholder="Password">
        <button type="submit">Register</button>
    </form>
    <h4>Login</h4>
    <form method="post" action="/login">
        <input type="text" name="username" placeholder="Username">
        <input type="password" name="password" placeholder="Password">
        <button type="submit">Login</button>
    </form>
    {{end}}
</div>

<div class="main">
    <h1>&#129302; Smart AI Chatbot</h1>
    <p>Ask anything &mdash; coding, study help, brainstorming, tasks. You can upload files too.</p>

    {{if .Error}}<div class="banner error">{{.Error}}</div>{{end}}
    {{if .Notice}}<div class="banner notice">{{.Notice}}</div>{{end}}

    {{if .LoggedIn}}
    <form method="post" action="/send" enctype="multipart/form-data">
        <label>Attach file (optional)</label>
        <input type="file" name="attachment" accept=".png,.jpg,.jpeg,.gif,.pdf,.txt,.md">
        <textarea name="message" rows="5" placeholder="You:"></textarea>
        <button type="submit">Send</button>
    </form>

    {{if .History}}
    <h3>&#128172; Chat History</h3>
    {{range .History}}
    <div class="turn">
        <div><b>You:</b> {{.UserText}}</div>
        {{if .AttachmentSummary}}<div class="attachment">Attachment: {{.AttachmentSummary}}</div>{{end}}
        <div class="reply"><b>AI:</b> {{.BotText}}</div>
    </div>
    {{end}}
    <form method="post" action="/delete">
        <button type="submit" class="danger">&#128465; Delete Chat History</button>
    </form>
    {{end}}
    {{else}}
    <p>Please login or register to start chatting.</p>
    {{end}}

    <hr>
    <small>&#129302; AI Chatbot | OpenAI &amp; Groq compatible</small>
</div>
</body>
</html>
`

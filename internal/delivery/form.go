package delivery

// One-page form. Kept deliberately plain: a text field for the URL or ID,
// the language selector and the timestamps toggle.
const formPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Transcript export</title>
<style>
body { font-family: sans-serif; max-width: 40rem; margin: 3rem auto; }
label { display: block; margin-top: 1rem; }
input[type=text] { width: 100%; padding: .4rem; }
button { margin-top: 1.5rem; padding: .5rem 1.5rem; }
.error { color: #b00020; margin-top: 1rem; }
</style>
</head>
<body>
<h1>YouTube transcript &rarr; .docx</h1>
<form method="post" action="/export">
  <label>Video URL or ID
    <input type="text" name="url" placeholder="https://www.youtube.com/watch?v=..." required>
  </label>
  <label>Subtitle language
    <select name="language">
      <option value="ja" selected>Japanese</option>
      <option value="en">English</option>
    </select>
  </label>
  <label><input type="checkbox" name="timestamps" value="1"> Include timestamps</label>
  <button type="submit">Download transcript</button>
</form>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
</body>
</html>
`

package music

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"mordomo/internal/command"
	"mordomo/internal/music"
	"mordomo/internal/storage"
)

type PlaylistCommand struct{}

func (c *PlaylistCommand) Name() string        { return "playlist" }
func (c *PlaylistCommand) Description() string { return "Gerencia suas playlists salvas." }
func (c *PlaylistCommand) Aliases() []string   { return []string{"pl"} }
func (c *PlaylistCommand) Category() string    { return "Música" }
func (c *PlaylistCommand) RequireDJ() bool     { return false }
func (c *PlaylistCommand) RequireStaff() bool  { return false }
func (c *PlaylistCommand) RequireOwner() bool  { return false }

func (c *PlaylistCommand) Run(ctx *command.MessageContext) error {
	command.ReplyText(ctx, "🎶 Gerenciamento de Playlists",
		"1️⃣ **Salvar playlist atual**\n"+
			"2️⃣ **Carregar uma playlist**\n"+
			"3️⃣ **Apagar uma playlist**\n"+
			"4️⃣ **Apagar todas as suas playlists**\n\n"+
			"Digite o número referente à opção desejada.")

	msg, ok := ctx.Prompt.Await(ctx.Event.ChannelID, ctx.Event.Author.ID, ctx.PromptWindow())
	if !ok {
		command.ReplyError(ctx, "Tempo limite excedido. Tente novamente.")
		return nil
	}

	switch strings.TrimSpace(msg.Content) {
	case "1":
		return c.save(ctx)
	case "2":
		return c.load(ctx)
	case "3":
		return c.deleteOne(ctx)
	case "4":
		return c.deleteAll(ctx)
	default:
		command.ReplyError(ctx, "Opção inválida. Tente novamente.")
		return nil
	}
}

func (c *PlaylistCommand) save(ctx *command.MessageContext) error {
	session := ctx.Players.Get(ctx.Event.GuildID)
	if session == nil {
		command.ReplyError(ctx, "Não há músicas na fila para salvar.")
		return nil
	}
	queue := session.Queue()
	if current := session.Current(); current != nil {
		queue = append([]*music.Track{current}, queue...)
	}
	if len(queue) == 0 {
		command.ReplyError(ctx, "Não há músicas na fila para salvar.")
		return nil
	}

	command.ReplyText(ctx, "🎶 Salvar Playlist", "Digite o nome da sua playlist:")
	msg, ok := ctx.Prompt.Await(ctx.Event.ChannelID, ctx.Event.Author.ID, ctx.PromptWindow())
	if !ok {
		command.ReplyError(ctx, "Tempo limite excedido. Tente novamente.")
		return nil
	}
	name := strings.TrimSpace(msg.Content)
	if name == "" {
		command.ReplyError(ctx, "O nome da playlist não pode ser vazio.")
		return nil
	}

	songs := make([]storage.PlaylistSong, 0, len(queue))
	for _, t := range queue {
		songs = append(songs, storage.PlaylistSong{
			Title:     t.Title,
			URL:       t.PageURL,
			Duration:  int64(t.Duration.Seconds()),
			Uploader:  t.Uploader,
			Thumbnail: t.Thumbnail,
		})
	}

	bg := context.Background()
	saved, err := ctx.Storage.SavePlaylist(bg, ctx.Event.Author.ID, name, songs)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicatePlaylist) {
			command.ReplyError(ctx, "Você já tem uma playlist com esse nome. Escolha outro nome.")
			return nil
		}
		command.ReplyError(ctx, "Não consegui salvar a playlist.")
		return err
	}

	command.ReplyText(ctx, "🎉 Playlist Salva",
		fmt.Sprintf("Playlist salva como **%s**.\n**Duração total:** `%s`\nCriada por: <@%s>",
			saved.Name, formatDuration(time.Duration(saved.Duration)*time.Second), ctx.Event.Author.ID))
	return nil
}

func (c *PlaylistCommand) load(ctx *command.MessageContext) error {
	pl, ok := c.choosePlaylist(ctx, "Carregar")
	if !ok {
		return nil
	}

	bg := context.Background()
	songs, err := ctx.Storage.PlaylistSongs(bg, pl.ID)
	if err != nil {
		command.ReplyError(ctx, "Não consegui carregar as músicas da playlist.")
		return err
	}
	if len(songs) == 0 {
		command.ReplyError(ctx, "Essa playlist está vazia.")
		return nil
	}

	channelID, okVoice := requireVoice(ctx)
	if !okVoice {
		return nil
	}

	session := ctx.Players.GetOrCreate(ctx.Event.GuildID)
	session.SetTextChannel(ctx.Event.ChannelID)
	// loading appends; whatever is already queued stays queued
	for _, song := range songs {
		session.Enqueue(music.NewTrack(music.Track{
			Title:       song.Title,
			PageURL:     song.URL,
			Duration:    time.Duration(song.Duration) * time.Second,
			Uploader:    song.Uploader,
			Thumbnail:   song.Thumbnail,
			RequestedBy: ctx.Event.Author.ID,
		}))
	}
	session.Play(channelID)

	command.ReplyText(ctx, "🎶 Playlist Carregada",
		fmt.Sprintf("**%s**: %d músicas entraram na fila.", pl.Name, len(songs)))
	return nil
}

func (c *PlaylistCommand) deleteOne(ctx *command.MessageContext) error {
	pl, ok := c.choosePlaylist(ctx, "Apagar")
	if !ok {
		return nil
	}
	bg := context.Background()
	if err := ctx.Storage.DeletePlaylist(bg, ctx.Event.Author.ID, pl.ID); err != nil {
		command.ReplyError(ctx, "Não consegui apagar essa playlist.")
		return err
	}
	command.ReplyText(ctx, "🗑️ Playlist Apagada", fmt.Sprintf("**%s** foi removida.", pl.Name))
	return nil
}

func (c *PlaylistCommand) deleteAll(ctx *command.MessageContext) error {
	command.ReplyText(ctx, "⚠️ Apagar Tudo",
		"Isso apaga **todas** as suas playlists. Digite `sim` para confirmar.")
	msg, ok := ctx.Prompt.Await(ctx.Event.ChannelID, ctx.Event.Author.ID, ctx.PromptWindow())
	if !ok || !strings.EqualFold(strings.TrimSpace(msg.Content), "sim") {
		command.ReplyText(ctx, "Cancelado", "Suas playlists continuam intactas.")
		return nil
	}

	bg := context.Background()
	n, err := ctx.Storage.DeleteAllPlaylists(bg, ctx.Event.Author.ID)
	if err != nil {
		command.ReplyError(ctx, "Não consegui apagar as playlists.")
		return err
	}
	command.ReplyText(ctx, "🗑️ Playlists Apagadas", fmt.Sprintf("%d playlists removidas.", n))
	return nil
}

// choosePlaylist lists the author's playlists and prompts for a number.
func (c *PlaylistCommand) choosePlaylist(ctx *command.MessageContext, action string) (*storage.Playlist, bool) {
	bg := context.Background()
	playlists, err := ctx.Storage.Playlists(bg, ctx.Event.Author.ID)
	if err != nil || len(playlists) == 0 {
		command.ReplyError(ctx, "Você não tem nenhuma playlist salva.")
		return nil, false
	}

	var b strings.Builder
	for i, pl := range playlists {
		fmt.Fprintf(&b, "`%2d.` **%s** `%s`\n", i+1, pl.Name,
			formatDuration(time.Duration(pl.Duration)*time.Second))
	}
	command.ReplyText(ctx, "🎶 "+action+" Playlist", b.String()+"\nDigite o número da playlist.")

	msg, ok := ctx.Prompt.Await(ctx.Event.ChannelID, ctx.Event.Author.ID, ctx.PromptWindow())
	if !ok {
		command.ReplyError(ctx, "Tempo limite excedido. Tente novamente.")
		return nil, false
	}
	choice, err := strconv.Atoi(strings.TrimSpace(msg.Content))
	if err != nil || choice < 1 || choice > len(playlists) {
		command.ReplyError(ctx, "Opção inválida.")
		return nil, false
	}
	return &playlists[choice-1], true
}
